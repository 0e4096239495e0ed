package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 06 15:04:05 -0700",
	"2 Jan 06 15:04:05 -0700",
}

// obsolete zone names allowed by RFC 2822 section 4.3
var rfc2822Zones = map[string]string{
	"UT":   "+0000",
	"UTC":  "+0000",
	"GMT":  "+0000",
	"Z":    "+0000",
	"EST":  "-0500",
	"EDT":  "-0400",
	"CST":  "-0600",
	"CDT":  "-0500",
	"MST":  "-0700",
	"MDT":  "-0600",
	"PST":  "-0800",
	"PDT":  "-0700",
	"WET":  "+0000",
	"WEST": "+0100",
	"CET":  "+0100",
	"CEST": "+0200",
	"EET":  "+0200",
	"EEST": "+0300",
	"MSK":  "+0300",
	"IST":  "+0530",
	"JST":  "+0900",
	"KST":  "+0900",
}

// ParseRFC2822 parses an RSS pubDate. Named zones are mapped to their offsets;
// unknown zone names are rejected and anything else the RFC layouts reject
// is handed to dateparse as UTC.
func ParseRFC2822(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	value := s
	if i := strings.LastIndexByte(s, ' '); i > 0 {
		zone := strings.ToUpper(s[i+1:])
		offset, ok := rfc2822Zones[zone]
		if ok {
			value = s[:i+1] + offset
		} else if isZoneName(zone) {
			// dateparse would read an unknown zone name as UTC
			return time.Time{}, fmt.Errorf("unknown time zone %q in date %q", zone, s)
		}
	}

	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return fallbackDate(s)
}

// ParseRFC3339 parses an Atom updated value
func ParseRFC3339(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	return fallbackDate(s)
}

func isZoneName(s string) bool {
	if len(s) < 2 || len(s) > 5 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func fallbackDate(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}
