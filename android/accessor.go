package android

import (
	"fmt"
	"strconv"

	xslice "github.com/frantjc/x/slice"
)

// ElementsByTagName returns every element in the tree rooted at doc,
// doc included, whose tag name matches tagName case-insensitively.
// Elements are returned in document order.
func ElementsByTagName(doc *Element, tagName string) []*Element {
	var (
		elements []*Element
		walk     func(*Element)
	)

	walk = func(el *Element) {
		if el.Is(tagName) {
			elements = append(elements, el)
		}

		for _, child := range el.Children {
			walk(child)
		}
	}

	if doc != nil {
		walk(doc)
	}

	return elements
}

// FirstElementByTagName returns the first element in document order
// matching tagName, or nil.
func FirstElementByTagName(doc *Element, tagName string) *Element {
	if elements := ElementsByTagName(doc, tagName); len(elements) > 0 {
		return elements[0]
	}

	return nil
}

// AttributeText returns the value of attributeName on the first element
// tagged tagName that carries it. Elements with the tag but without the
// attribute are skipped.
func AttributeText(doc *Element, tagName, attributeName string) (string, bool) {
	for _, el := range ElementsByTagName(doc, tagName) {
		if value, ok := el.Attr(attributeName); ok {
			return value, true
		}
	}

	return "", false
}

// AttributeInt is AttributeText parsed as an integer. It returns def when
// the attribute is absent and an error when it is present but not numeric.
func AttributeInt(doc *Element, tagName, attributeName string, def int) (int, error) {
	value, ok := AttributeText(doc, tagName, attributeName)
	if !ok {
		return def, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return def, fmt.Errorf("parse <%s %s=%q>: %w", tagName, attributeName, value, err)
	}

	return i, nil
}

// ChildElements returns the direct children of node whose tag name
// matches tagName case-insensitively, in document order.
func ChildElements(node *Element, tagName string) []*Element {
	if node == nil {
		return nil
	}

	return xslice.Filter(node.Children, func(child *Element, _ int) bool {
		return child.Is(tagName)
	})
}
