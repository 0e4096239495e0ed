package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

type Generator struct {
	title   string
	version string
}

func NewGenerator(title, version string) *Generator {
	return &Generator{title: title, version: version}
}

// Run renders entries as an RSS 2.0 channel. Entries are written in the given order.
func (g *Generator) Run(entries []Entry, builtAt time.Time) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", g.title, 4)
	g.writeElement(&buf, "description", fmt.Sprintf("Entries seen by %s within the current window", g.title), 4)

	lastBuildDate := builtAt.UTC()
	if len(entries) > 0 {
		lastBuildDate = entries[0].PublishedAt()
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("RSS-Toast/%s", g.version), 4)

	for _, entry := range entries {
		g.writeItem(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	if entry.Link != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(entry.Link)))
		xml.EscapeText(buf, []byte(entry.Link))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "title", entry.Title, 6)

	if g.isURL(entry.Link) {
		g.writeElement(buf, "link", entry.Link, 6)
	}

	g.writeElement(buf, "pubDate", entry.PublishedAt().Format(time.RFC1123Z), 6)

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
