package feed

import (
	"errors"
	"fmt"
	"time"
)

var ErrMalformedDocument = errors.New("malformed document")

// Entry is the normalized record extracted from an RSS item or an Atom entry.
// Identity is the timestamp alone: two entries published in the same second
// are the same entry.
type Entry struct {
	Title     string
	Link      string
	Timestamp int64 // UTC epoch seconds
}

func (e Entry) Key() int64 {
	return e.Timestamp
}

func (e Entry) PublishedAt() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

type Schema int

const (
	SchemaRSS Schema = iota
	SchemaAtom
)

func (s Schema) String() string {
	switch s {
	case SchemaRSS:
		return "rss"
	case SchemaAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// EntryError reports an entry that was skipped while its siblings were kept
type EntryError struct {
	Schema Schema
	Index  int
	Title  string
	Err    error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s entry %d (%q): %v", e.Schema, e.Index, e.Title, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// element is the parsed content of a direct child of an item or entry
type element struct {
	text string
	href string
}

type fieldSetter func(e *Entry, el element) error

var extractors = map[Schema]map[string]fieldSetter{
	SchemaRSS: {
		"title":   setTitle,
		"guid":    setLink,
		"pubDate": setDate(ParseRFC2822),
	},
	SchemaAtom: {
		"title":   setTitle,
		"link":    setHref,
		"updated": setDate(ParseRFC3339),
	},
}

var schemaByTag = map[string]Schema{
	"item":  SchemaRSS,
	"entry": SchemaAtom,
}

func setTitle(e *Entry, el element) error {
	e.Title = normalizeTitle(el.text)
	return nil
}

func setLink(e *Entry, el element) error {
	e.Link = el.text
	return nil
}

func setHref(e *Entry, el element) error {
	if el.href != "" {
		e.Link = el.href
	} else {
		e.Link = el.text
	}
	return nil
}

func setDate(parse func(string) (time.Time, error)) fieldSetter {
	return func(e *Entry, el element) error {
		t, err := parse(el.text)
		if err != nil {
			return err
		}
		e.Timestamp = t.Unix()
		return nil
	}
}
