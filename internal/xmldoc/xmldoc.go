package xmldoc

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Parse decodes text into an element tree. It fails with
// ErrMalformedManifest when the text is not well-formed XML or contains
// no root element.
func Parse(text string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: %v (in %q)", scormpack.ErrMalformedManifest, err, preview(text))
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element (in %q)", scormpack.ErrMalformedManifest, preview(text))
	}
	return root, nil
}

// preview truncates document text for inclusion in error messages.
func preview(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > scormpack.MaxErrorPreviewLength {
		return text[:scormpack.MaxErrorPreviewLength] + "..."
	}
	return text
}

// FirstChild returns the first direct child whose local name matches, or
// nil when there is none.
func FirstChild(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, child := range el.ChildElements() {
		if child.Tag == name {
			return child
		}
	}
	return nil
}

// Children returns all direct children whose local name matches, in
// document order.
func Children(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == name {
			out = append(out, child)
		}
	}
	return out
}

// FindAll returns every descendant of el (el excluded) whose local name
// matches, in depth-first document order.
func FindAll(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == name {
			out = append(out, child)
		}
		out = append(out, FindAll(child, name)...)
	}
	return out
}

// Attr returns the value of the attribute with the given local name, or
// "" when absent. Prefixed attributes (adlcp:masteryscore) match their
// local part.
func Attr(el *etree.Element, name string) string {
	if el == nil {
		return ""
	}
	for _, a := range el.Attr {
		if a.Key == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether an attribute with the given local name exists,
// regardless of its value.
func HasAttr(el *etree.Element, name string) bool {
	if el == nil {
		return false
	}
	for _, a := range el.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// Text returns el's character data with surrounding whitespace trimmed.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// ChildText returns the trimmed text of the first matching direct child,
// or "" when the child is absent.
func ChildText(el *etree.Element, name string) string {
	return Text(FirstChild(el, name))
}
