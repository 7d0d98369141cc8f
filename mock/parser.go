package mock

import "github.com/fwojciec/ogp"

var _ ogp.Parser = (*Parser)(nil)

// Parser is a mock implementation of ogp.Parser.
type Parser struct {
	ParseFn func(source string) (*ogp.Metadata, error)
}

func (p *Parser) Parse(source string) (*ogp.Metadata, error) {
	return p.ParseFn(source)
}
