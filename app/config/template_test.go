package config

import (
	"reflect"
	"sort"
	"testing"
)

func TestExpand_TwoGroups(t *testing.T) {
	result := Expand("{A|B|C}_{D|E}")

	expected := []string{"A_D", "A_E", "B_D", "B_E", "C_D", "C_E"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestExpand_PlainLine(t *testing.T) {
	result := Expand("plain_line")

	if len(result) != 1 || result[0] != "plain_line" {
		t.Errorf("Expected [plain_line], got %v", result)
	}
}

func TestExpand_Comment(t *testing.T) {
	for _, line := range []string{"# comment {A|B}", "#", "   # indented"} {
		if result := Expand(line); len(result) != 0 {
			t.Errorf("Expected no output for %q, got %v", line, result)
		}
	}
}

func TestExpand_URLTemplate(t *testing.T) {
	result := Expand("https://example.com/{news|sport}/feed.{rss|atom}?lang=en")

	expected := []string{
		"https://example.com/news/feed.rss?lang=en",
		"https://example.com/news/feed.atom?lang=en",
		"https://example.com/sport/feed.rss?lang=en",
		"https://example.com/sport/feed.atom?lang=en",
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestExpand_CountIsProductOfGroupSizes(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"{a}", 1},
		{"{a|b}", 2},
		{"x{a|b|c}y{d|e}z{f|g}", 12},
		{"{a|b|c|d}-{e|f|g}", 12},
		{"{}", 1},
		{"{|x}", 2},
	}

	for _, tt := range tests {
		result := Expand(tt.line)
		if len(result) != tt.expected {
			t.Errorf("Expand(%q): expected %d results, got %d (%v)", tt.line, tt.expected, len(result), result)
		}

		unique := make(map[string]bool)
		for _, r := range result {
			unique[r] = true
		}
		if len(unique) != len(result) {
			t.Errorf("Expand(%q): expected distinct results, got %v", tt.line, result)
		}
	}
}

func TestExpand_MatchesSetOfChoices(t *testing.T) {
	result := Expand("{1|2}:{3|4}")
	sort.Strings(result)

	expected := []string{"1:3", "1:4", "2:3", "2:4"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestExpand_EmptyGroup(t *testing.T) {
	result := Expand("pre{}post")

	if len(result) != 1 || result[0] != "prepost" {
		t.Errorf("Expected [prepost], got %v", result)
	}
}

func TestExpand_UnterminatedBrace(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"abc{def", []string{"abc{def"}},
		{"{a|b}-{c", []string{"a-{c", "b-{c"}},
		{"{a|b}}", []string{"a}", "b}"}},
	}

	for _, tt := range tests {
		result := Expand(tt.line)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Expand(%q): expected %v, got %v", tt.line, tt.expected, result)
		}
	}
}

func TestExpandAll(t *testing.T) {
	result := ExpandAll("{A|B|C}_{D|E}\nasdf\n# {DD|CC}")

	expected := []string{"A_D", "A_E", "B_D", "B_E", "C_D", "C_E", "asdf"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestExpandAll_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	result := ExpandAll("\r\nhttps://a.example/{x|y}\r\n\r\n  \nhttps://b.example\r\n")

	expected := []string{"https://a.example/x", "https://a.example/y", "https://b.example"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestProduct_FirstGroupSlowest(t *testing.T) {
	result := Product([][]string{{"a", "b"}, {"1", "2", "3"}})

	expected := [][]string{
		{"a", "1"}, {"a", "2"}, {"a", "3"},
		{"b", "1"}, {"b", "2"}, {"b", "3"},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestProduct_NoGroups(t *testing.T) {
	result := Product(nil)

	if len(result) != 1 || len(result[0]) != 0 {
		t.Errorf("Expected a single empty combination, got %v", result)
	}
}

func TestProduct_ZeroSizeGroup(t *testing.T) {
	result := Product([][]string{{"a", "b"}, {}, {"c"}})

	expected := [][]string{{"a", "", "c"}, {"b", "", "c"}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
