package ogp

// Parser turns an HTML document into Open Graph metadata.
type Parser interface {
	// Parse extracts metadata from the document source.
	// Returns EINVALID for empty source and EMALFORMED for source that is
	// not a complete HTML document. Missing properties are not errors;
	// they are reported by the returned record's Errors method.
	Parse(source string) (*Metadata, error)
}
