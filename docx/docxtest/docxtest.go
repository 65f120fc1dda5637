// Package docxtest builds minimal in-memory .docx archives for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"testing"

	"docsite/docx"
)

// Builder assembles a synthetic Word document paragraph by paragraph.
type Builder struct {
	body  bytes.Buffer
	rels  bytes.Buffer
	media map[string][]byte
}

// New returns an empty document builder.
func New() *Builder {
	return &Builder{media: make(map[string][]byte)}
}

// Paragraph appends a body paragraph with the given style ("" for plain
// text) and text, optionally embedding previously registered images.
func (b *Builder) Paragraph(style, text string, imageIDs ...string) *Builder {
	b.body.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(&b.body, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	if text != "" {
		fmt.Fprintf(&b.body, "<w:r><w:t>%s</w:t></w:r>", escape(text))
	}
	for _, id := range imageIDs {
		fmt.Fprintf(&b.body, `<w:r><w:drawing><a:blip r:embed="%s"/></w:drawing></w:r>`, id)
	}
	b.body.WriteString("</w:p>")
	return b
}

// Heading appends a heading paragraph of the given level.
func (b *Builder) Heading(level int, text string) *Builder {
	return b.Paragraph(strconv.Itoa(level), text)
}

// RawXML appends an arbitrary body fragment, for shapes the other methods
// cannot produce.
func (b *Builder) RawXML(fragment string) *Builder {
	b.body.WriteString(fragment)
	return b
}

// Image registers an embedded image: a relationship entry pointing at an
// archive member under word/, plus the member's bytes.
func (b *Builder) Image(relID, target string, data []byte) *Builder {
	fmt.Fprintf(&b.rels,
		`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`,
		relID, target)
	b.media["word/"+target] = data
	return b
}

// DanglingImage registers a relationship entry with no backing archive
// member, for exercising the skip-with-warning path.
func (b *Builder) DanglingImage(relID, target string) *Builder {
	fmt.Fprintf(&b.rels,
		`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`,
		relID, target)
	return b
}

// Bytes assembles the .docx archive.
func (b *Builder) Bytes() []byte {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		"<w:body>" + b.body.String() + "</w:body></w:document>"

	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		b.rels.String() + "</Relationships>"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writeMember(zw, "word/document.xml", []byte(documentXML))
	writeMember(zw, "word/_rels/document.xml.rels", []byte(relsXML))
	for name, data := range b.media {
		writeMember(zw, name, data)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Document parses the assembled archive into a docx.Document.
func (b *Builder) Document(t *testing.T) *docx.Document {
	t.Helper()

	data := b.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open synthetic archive: %v", err)
	}
	doc, err := docx.NewReader(zr)
	if err != nil {
		t.Fatalf("failed to parse synthetic document: %v", err)
	}
	return doc
}

func writeMember(zw *zip.Writer, name string, data []byte) {
	w, err := zw.Create(name)
	if err != nil {
		panic(err)
	}
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		panic(err)
	}
	return buf.String()
}
