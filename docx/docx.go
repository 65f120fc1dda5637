// Package docx reads the subset of a Word document this tool cares about:
// the ordered paragraph blocks of word/document.xml (style, text, embedded
// image references) and the image relationship table that maps those
// references to archive members.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Paragraph is one block of the source document. A paragraph is kept only if
// it carries text or at least one embedded image.
type Paragraph struct {
	// Style is the w:pStyle value ("1", "Heading1", ...), empty for body
	// text.
	Style string
	// Text is the concatenated run text, whitespace-trimmed.
	Text string
	// ImageIDs are the relationship IDs of images embedded in the
	// paragraph, in document order.
	ImageIDs []string
}

// Document is a parsed .docx file. Image bytes are read lazily from the
// archive, so the Document must stay open until rendering is done.
type Document struct {
	// Paragraphs are the document's blocks in source order.
	Paragraphs []Paragraph

	reader *zip.Reader
	closer io.Closer
	rels   map[string]string // relationship ID -> archive target
}

// Open reads and parses the document at path.
func Open(name string) (*Document, error) {
	rc, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	doc, err := NewReader(&rc.Reader)
	if err != nil {
		rc.Close()
		return nil, err
	}
	doc.closer = rc
	return doc, nil
}

// NewReader parses a document from an already-opened zip archive.
func NewReader(r *zip.Reader) (*Document, error) {
	docXML, err := readMember(r, "word/document.xml")
	if err != nil {
		return nil, err
	}
	relsXML, err := readMember(r, "word/_rels/document.xml.rels")
	if err != nil {
		return nil, err
	}

	paragraphs, err := parseBody(docXML)
	if err != nil {
		return nil, err
	}
	rels, err := parseImageRels(relsXML)
	if err != nil {
		return nil, err
	}

	return &Document{
		Paragraphs: paragraphs,
		reader:     r,
		rels:       rels,
	}, nil
}

// Close releases the underlying archive, if the document owns one.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Image returns the bytes and lowercased file extension of the embedded
// image with the given relationship ID. The extension is empty when the
// archive target has none; callers choose their own default.
func (d *Document) Image(relID string) ([]byte, string, error) {
	target, ok := d.rels[relID]
	if !ok {
		return nil, "", fmt.Errorf("no image relationship %q", relID)
	}

	name := "word/" + strings.TrimPrefix(target, "/")
	data, err := readMember(d.reader, name)
	if err != nil {
		return nil, "", err
	}

	return data, strings.ToLower(path.Ext(target)), nil
}

// HeadingLevel reports the heading level of a paragraph style, or 0 when
// the style is not a heading. Word emits both bare numbers and "HeadingN"
// identifiers depending on the document's origin.
func HeadingLevel(style string) int {
	switch style {
	case "1", "Heading1":
		return 1
	case "2", "Heading2":
		return 2
	case "3", "Heading3":
		return 3
	case "4", "Heading4":
		return 4
	}
	return 0
}

func readMember(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("archive has no %s", name)
}

// parseBody walks word/document.xml collecting one Paragraph per w:p
// element. Only three element kinds matter: w:pStyle (the block style),
// w:t (run text), and a:blip (an embedded image reference).
func parseBody(data []byte) ([]Paragraph, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		paragraphs []Paragraph
		current    *Paragraph
		text       strings.Builder
		inText     bool
		depth      int // nesting depth of w:p (text boxes nest paragraphs)
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == nsMain && t.Name.Local == "p":
				depth++
				if depth > 1 {
					continue
				}
				current = &Paragraph{}
				text.Reset()
			// Style is read from the outer paragraph only; nested paragraphs
			// (text boxes) contribute text and images but never the style.
			case current != nil && depth == 1 && t.Name.Space == nsMain && t.Name.Local == "pStyle":
				for _, a := range t.Attr {
					if a.Name.Space == nsMain && a.Name.Local == "val" {
						current.Style = a.Value
					}
				}
			case current != nil && t.Name.Space == nsMain && t.Name.Local == "t":
				inText = true
			case current != nil && t.Name.Local == "blip":
				for _, a := range t.Attr {
					if a.Name.Space == nsRel && a.Name.Local == "embed" && a.Value != "" {
						current.ImageIDs = append(current.ImageIDs, a.Value)
					}
				}
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch {
			case t.Name.Space == nsMain && t.Name.Local == "t":
				inText = false
			case t.Name.Space == nsMain && t.Name.Local == "p":
				depth--
				if depth > 0 || current == nil {
					continue
				}
				current.Text = strings.TrimSpace(text.String())
				if current.Text != "" || len(current.ImageIDs) > 0 {
					paragraphs = append(paragraphs, *current)
				}
				current = nil
			}
		}
	}

	return paragraphs, nil
}

type relationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// parseImageRels extracts the ID -> target mapping for image relationships
// from word/_rels/document.xml.rels.
func parseImageRels(data []byte) (map[string]string, error) {
	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships XML: %w", err)
	}

	targets := make(map[string]string)
	for _, rel := range rels.Rels {
		if rel.ID == "" || rel.Target == "" {
			continue
		}
		if !strings.HasSuffix(rel.Type, "/image") {
			continue
		}
		targets[rel.ID] = rel.Target
	}
	return targets, nil
}
