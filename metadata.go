package ogp

// Known top-level property names, without the og: prefix.
const (
	PropertyTitle       = "title"
	PropertyType        = "type"
	PropertyImage       = "image"
	PropertyURL         = "url"
	PropertyDescription = "description"
	PropertyDeterminer  = "determiner"
	PropertySiteName    = "site_name"
	PropertyAudio       = "audio"
	PropertyVideo       = "video"
	PropertyLocale      = "locale"
)

// RequiredProperties lists the properties every Open Graph page must declare,
// in the order validation reports them.
var RequiredProperties = []string{
	PropertyTitle,
	PropertyType,
	PropertyImage,
	PropertyURL,
}

// MissingMessage is the message attached to every FieldError.
const MissingMessage = "attribute is missing"

// FieldError reports a required property absent from a document.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validator reports which required properties are missing from the source
// a Metadata record was extracted from.
type Validator interface {
	Validate() []FieldError
}

// Metadata holds the Open Graph properties extracted from a single document.
//
// Metadata is populated during extraction and should be treated as
// read-only afterwards.
type Metadata struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Determiner  string `json:"determiner,omitempty" yaml:"determiner,omitempty"`
	SiteName    string `json:"siteName,omitempty" yaml:"site_name,omitempty"`

	Images []MediaItem `json:"images,omitempty" yaml:"images,omitempty"`
	Audios []MediaItem `json:"audios,omitempty" yaml:"audios,omitempty"`
	Videos []MediaItem `json:"videos,omitempty" yaml:"videos,omitempty"`

	Locales []string `json:"locales,omitempty" yaml:"locales,omitempty"`

	// Extensions holds og: properties outside the known set, keyed by the
	// lower-cased name without the og: prefix (e.g. "updated_time").
	Extensions map[string]string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	validator Validator
}

// NewMetadata returns an empty Metadata whose Valid and Errors methods
// delegate to v. A nil v falls back to CheckRequired.
func NewMetadata(v Validator) *Metadata {
	return &Metadata{validator: v}
}

// Image returns the first image, or nil if the document declared none.
func (m *Metadata) Image() *MediaItem {
	if len(m.Images) == 0 {
		return nil
	}
	return &m.Images[0]
}

// AddImage appends a new image item with the given URL.
func (m *Metadata) AddImage(url string) {
	m.Images = append(m.Images, MediaItem{URL: url})
}

// AddAudio appends a new audio item with the given URL.
func (m *Metadata) AddAudio(url string) {
	m.Audios = append(m.Audios, MediaItem{URL: url})
}

// AddVideo appends a new video item with the given URL.
func (m *Metadata) AddVideo(url string) {
	m.Videos = append(m.Videos, MediaItem{URL: url})
}

// AddLocale appends a locale in declaration order.
func (m *Metadata) AddLocale(locale string) {
	m.Locales = append(m.Locales, locale)
}

// SetProperty assigns a scalar property. Known names set the matching field;
// any other name is stored in Extensions. Later calls overwrite earlier ones.
func (m *Metadata) SetProperty(name, value string) {
	switch name {
	case PropertyTitle:
		m.Title = value
	case PropertyType:
		m.Type = value
	case PropertyURL:
		m.URL = value
	case PropertyDescription:
		m.Description = value
	case PropertyDeterminer:
		m.Determiner = value
	case PropertySiteName:
		m.SiteName = value
	default:
		if m.Extensions == nil {
			m.Extensions = make(map[string]string)
		}
		m.Extensions[name] = value
	}
}

// Property returns a scalar property by name, looking at known fields first
// and Extensions second. The boolean is false for unknown names and empty
// known fields.
func (m *Metadata) Property(name string) (string, bool) {
	var v string
	switch name {
	case PropertyTitle:
		v = m.Title
	case PropertyType:
		v = m.Type
	case PropertyURL:
		v = m.URL
	case PropertyDescription:
		v = m.Description
	case PropertyDeterminer:
		v = m.Determiner
	case PropertySiteName:
		v = m.SiteName
	default:
		v, ok := m.Extensions[name]
		return v, ok
	}
	return v, v != ""
}

// Valid reports whether no required property is missing.
func (m *Metadata) Valid() bool {
	return len(m.Errors()) == 0
}

// Errors returns one FieldError per missing required property, in the order
// of RequiredProperties. Each call recomputes the result.
func (m *Metadata) Errors() []FieldError {
	if m.validator != nil {
		return m.validator.Validate()
	}
	return m.CheckRequired()
}

// CheckRequired validates the record's own fields. It is used for records
// that are not bound to a source document, such as ones decoded from storage.
func (m *Metadata) CheckRequired() []FieldError {
	var errs []FieldError
	for _, name := range RequiredProperties {
		var present bool
		switch name {
		case PropertyImage:
			present = len(m.Images) > 0
		default:
			_, present = m.Property(name)
		}
		if !present {
			errs = append(errs, FieldError{Field: name, Message: MissingMessage})
		}
	}
	return errs
}
