package feed

import (
	"testing"

	"github.com/lysyi3m/rss-toast/app/config"
)

func TestFilterer_NoFilters(t *testing.T) {
	filterer := NewFilterer(nil)

	muted, reason := filterer.Muted(Entry{Title: "Anything", Link: "https://example.com/1"})
	if muted {
		t.Error("Entry should not be muted when no filters are configured")
	}
	if reason != "" {
		t.Errorf("Expected empty reason, got: %s", reason)
	}
}

func TestFilterer_TitleInclude(t *testing.T) {
	filterer := NewFilterer([]config.Filter{
		{Field: "title", Includes: []string{"news", "update"}},
	})

	tests := []struct {
		title string
		muted bool
	}{
		{"Breaking News: Important Update", false},
		{"Sports UPDATE", false},
		{"Weather Report", true},
	}

	for _, tt := range tests {
		muted, reason := filterer.Muted(Entry{Title: tt.title})
		if muted != tt.muted {
			t.Errorf("Title %q: expected muted=%v, got %v", tt.title, tt.muted, muted)
		}
		if muted && reason == "" {
			t.Errorf("Title %q: expected a mute reason", tt.title)
		}
	}
}

func TestFilterer_TitleExclude(t *testing.T) {
	filterer := NewFilterer([]config.Filter{
		{Field: "title", Excludes: []string{"sponsored"}},
	})

	if muted, _ := filterer.Muted(Entry{Title: "[Sponsored] Buy now"}); !muted {
		t.Error("Entry with excluded term should be muted")
	}
	if muted, _ := filterer.Muted(Entry{Title: "Release notes"}); muted {
		t.Error("Entry without excluded term should not be muted")
	}
}

func TestFilterer_LinkAndTitleCombined(t *testing.T) {
	filterer := NewFilterer([]config.Filter{
		{Field: "link", Includes: []string{"example.com"}},
		{Field: "title", Excludes: []string{"ad"}},
	})

	tests := []struct {
		entry Entry
		muted bool
	}{
		{Entry{Title: "Post", Link: "https://example.com/post"}, false},
		{Entry{Title: "Post", Link: "https://other.org/post"}, true},
		{Entry{Title: "Ad campaign", Link: "https://example.com/ad"}, true},
	}

	for _, tt := range tests {
		if muted, _ := filterer.Muted(tt.entry); muted != tt.muted {
			t.Errorf("Entry %+v: expected muted=%v, got %v", tt.entry, tt.muted, muted)
		}
	}
}
