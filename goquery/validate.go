package goquery

import "github.com/fwojciec/ogp"

// Validate queries the document for each of ogp.RequiredProperties and
// returns one FieldError per missing property, in that order. It does not
// look at extracted records and has no side effects.
func (d *Document) Validate() []ogp.FieldError {
	var errs []ogp.FieldError
	for _, name := range ogp.RequiredProperties {
		if !d.Has(name) {
			errs = append(errs, ogp.FieldError{Field: name, Message: ogp.MissingMessage})
		}
	}
	return errs
}
