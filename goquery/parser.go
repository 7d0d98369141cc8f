package goquery

import "github.com/fwojciec/ogp"

// Ensure Parser implements ogp.Parser at compile time.
var _ ogp.Parser = (*Parser)(nil)

// Parser implements ogp.Parser by loading and extracting a Document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse loads source and extracts its Open Graph metadata.
func (p *Parser) Parse(source string) (*ogp.Metadata, error) {
	return Parse(source)
}

// Parse loads source and extracts its Open Graph metadata. The returned
// record validates against the parsed document.
func Parse(source string) (*ogp.Metadata, error) {
	doc, err := Load(source)
	if err != nil {
		return nil, err
	}
	return doc.Extract(), nil
}
