// Package goquery implements Open Graph extraction on top of
// github.com/PuerkitoBio/goquery. A Document is loaded once from source and
// then queried by the extractor and the validator without re-parsing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogp"
	"golang.org/x/net/html"
)

// closingTag must appear in any source Load accepts.
const closingTag = "</html>"

// propertyPrefix is the case-sensitive prefix of every Open Graph property.
const propertyPrefix = "og:"

// Ensure Document implements ogp.Validator at compile time.
var _ ogp.Validator = (*Document)(nil)

// Document is a parsed HTML document that can be queried for Open Graph
// meta tags. A Document is read-only and safe for concurrent use.
type Document struct {
	doc *goquery.Document
}

// Load validates source and parses it into a Document.
//
// Returns EINVALID if source is empty and EMALFORMED if source does not
// contain a closing </html> tag. The closing-tag check runs before any
// parsing.
func Load(source string) (*Document, error) {
	if source == "" {
		return nil, ogp.Errorf(ogp.EINVALID, "source cannot be empty")
	}
	if !strings.Contains(source, closingTag) {
		return nil, ogp.Errorf(ogp.EMALFORMED, "source has no closing %s tag", closingTag)
	}

	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, ogp.Errorf(ogp.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Property is a single og: meta tag in document order.
type Property struct {
	// Name is the property attribute as written, including the og: prefix.
	Name string

	// Content is the content attribute, or empty if the tag has none.
	Content string
}

// Properties returns every og: meta tag that is a direct child of head,
// in document order.
func (d *Document) Properties() []Property {
	var props []Property
	d.doc.Find(`head > meta[property^="` + propertyPrefix + `"]`).Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		props = append(props, Property{Name: name, Content: content})
	})
	return props
}

// Has reports whether head contains a meta tag whose property is exactly
// og:<name>.
func (d *Document) Has(name string) bool {
	want := propertyPrefix + name
	return d.doc.Find("head > meta[property]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		property, _ := sel.Attr("property")
		return property == want
	}).Length() > 0
}
