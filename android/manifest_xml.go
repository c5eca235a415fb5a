package android

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	AndroidManifestName = "AndroidManifest.xml"
)

// Element is a node of a parsed AndroidManifest.xml. Names are kept in
// their raw, prefixed form (e.g. "android:name") so that attributes can
// be looked up the way they are written rather than by namespace URI.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

type Attr struct {
	Name  string
	Value string
}

// Attr returns the value of the attribute with exactly the given name.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}

	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Is reports whether e's tag name equals tagName, ignoring case.
func (e *Element) Is(tagName string) bool {
	return e != nil && strings.EqualFold(e.Name, tagName)
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}

	return name.Space + ":" + name.Local
}

// DecodeElement reads a single XML document from r into an Element tree.
// Start and end tags must balance and exactly one root element is allowed.
// Documents may declare any encoding that charset.Lookup knows.
func DecodeElement(r io.Reader) (*Element, error) {
	var (
		dec   = xml.NewDecoder(r)
		root  *Element
		stack []*Element
	)

	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: qualifiedName(t.Name)}
			for _, attr := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: qualifiedName(attr.Name), Value: attr.Value})
			}

			if n := len(stack); n > 0 {
				stack[n-1].Children = append(stack[n-1].Children, el)
			} else if root != nil {
				return nil, fmt.Errorf("unexpected element <%s> after root element <%s>", el.Name, root.Name)
			} else {
				root = el
			}

			stack = append(stack, el)
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if n := len(stack); n == 0 || stack[n-1].Name != name {
				return nil, fmt.Errorf("unexpected end element </%s>", name)
			}

			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Name)
	} else if root == nil {
		return nil, fmt.Errorf("no root element")
	}

	return root, nil
}

// DecodeElementFile opens and decodes the XML document at name.
func DecodeElementFile(name string) (*Element, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeElement(f)
}
