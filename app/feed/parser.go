package feed

import (
	"bytes"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// record is an item or entry element that is still open
type record struct {
	schema Schema
	depth  int
	slot   int
	entry  Entry
	err    error
}

// capture is a direct child of a record whose text is being collected
type capture struct {
	owner  *record
	name   string
	depth  int
	href   string
	text   strings.Builder
	setter fieldSetter
}

// Run extracts entries from an RSS or Atom document in document order.
// Entries whose date cannot be parsed are left out and reported in the
// second return value. A document that is not well-formed XML yields
// ErrMalformedDocument.
func (p *Parser) Run(data []byte) ([]Entry, []error, error) {
	pp := xpp.NewXMLPullParser(bytes.NewReader(data), true, charset.NewReaderLabel)

	var (
		slots   []*Entry
		skipped []error
		stack   []*record
		active  *capture
		depth   int
		hasRoot bool
	)

	for {
		event, err := pp.Next()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		if event == xpp.EndDocument {
			break
		}

		switch event {
		case xpp.StartTag:
			depth++
			hasRoot = true

			if schema, ok := schemaByTag[pp.Name]; ok {
				stack = append(stack, &record{schema: schema, depth: depth, slot: len(slots)})
				slots = append(slots, nil)
				continue
			}

			if active != nil || len(stack) == 0 {
				continue
			}

			top := stack[len(stack)-1]
			if depth != top.depth+1 {
				continue
			}
			if setter, ok := extractors[top.schema][pp.Name]; ok {
				active = &capture{
					owner:  top,
					name:   pp.Name,
					depth:  depth,
					href:   strings.TrimSpace(pp.Attribute("href")),
					setter: setter,
				}
			}

		case xpp.Text:
			if active != nil && len(stack) > 0 && stack[len(stack)-1] == active.owner {
				active.text.WriteString(pp.Text)
			}

		case xpp.EndTag:
			if active != nil && depth == active.depth {
				el := element{text: strings.TrimSpace(active.text.String()), href: active.href}
				if err := active.setter(&active.owner.entry, el); err != nil && active.owner.err == nil {
					active.owner.err = fmt.Errorf("invalid %s: %w", active.name, err)
				}
				active = nil
			}

			if n := len(stack); n > 0 && stack[n-1].depth == depth {
				r := stack[n-1]
				stack = stack[:n-1]

				if r.err != nil {
					skipped = append(skipped, &EntryError{Schema: r.schema, Index: r.slot, Title: r.entry.Title, Err: r.err})
				} else {
					entry := r.entry
					slots[r.slot] = &entry
				}
			}

			depth--
		}
	}

	if !hasRoot {
		return nil, nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}

	entries := make([]Entry, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	return entries, skipped, nil
}

func normalizeTitle(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
