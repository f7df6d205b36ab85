package truckscontrol

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is one node of a parsed upstream response. Repeated children are
// always held as a slice, so the upstream's list-or-singleton ambiguity
// never leaks past this package.
type Element struct {
	Name  string
	Attrs map[string]string
	Text  string

	children map[string][]*Element
}

// ParseDocument decodes an XML document into its root Element.
func ParseDocument(reader io.Reader) (*Element, error) {
	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok {
			return buildElement(d, start)
		}
	}
}

func buildElement(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	element := &Element{
		Name:     start.Name.Local,
		Attrs:    map[string]string{},
		children: map[string][]*Element{},
	}

	for _, attr := range start.Attr {
		element.Attrs[attr.Name.Local] = attr.Value
	}

	var text strings.Builder

	for {
		tok, err := d.Token()
		if err != nil {
			// Includes io.EOF: a truncated document is a hard error.
			return nil, err
		}

		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			child, err := buildElement(d, t)
			if err != nil {
				return nil, err
			}
			element.children[child.Name] = append(element.children[child.Name], child)
		case xml.EndElement:
			element.Text = strings.TrimSpace(text.String())
			return element, nil
		}
	}
}

// Children returns every child element with the given name.
func (e *Element) Children(name string) []*Element {
	return e.children[name]
}

// Has reports whether a child element with the given name is present at
// all, which is distinct from it carrying an empty value.
func (e *Element) Has(name string) bool {
	return len(e.children[name]) > 0
}

// Field returns the text of the first child with the given name, or the
// empty string when absent.
func (e *Element) Field(name string) string {
	if children := e.children[name]; len(children) > 0 {
		return children[0].Text
	}

	return ""
}
