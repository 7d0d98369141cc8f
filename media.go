package ogp

// Structured property names shared by image, audio and video items.
const (
	MediaURL       = "url"
	MediaSecureURL = "secure_url"
	MediaType      = "type"
	MediaWidth     = "width"
	MediaHeight    = "height"
	MediaAlt       = "alt"
)

// MediaItem is an image, audio or video declared by a base og:image,
// og:audio or og:video tag, together with the structured properties
// (og:image:width etc.) that followed it. Empty fields were not declared.
type MediaItem struct {
	URL       string `json:"url" yaml:"url"`
	SecureURL string `json:"secureUrl,omitempty" yaml:"secure_url,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	Height    string `json:"height,omitempty" yaml:"height,omitempty"`
	Alt       string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Set assigns a structured property by its underscore name (e.g.
// "secure_url"). It reports false and leaves the item unchanged when the
// name is not a known structured property.
func (i *MediaItem) Set(name, value string) bool {
	switch name {
	case MediaURL:
		i.URL = value
	case MediaSecureURL:
		i.SecureURL = value
	case MediaType:
		i.Type = value
	case MediaWidth:
		i.Width = value
	case MediaHeight:
		i.Height = value
	case MediaAlt:
		i.Alt = value
	default:
		return false
	}
	return true
}

// Get returns a structured property by its underscore name.
func (i *MediaItem) Get(name string) string {
	switch name {
	case MediaURL:
		return i.URL
	case MediaSecureURL:
		return i.SecureURL
	case MediaType:
		return i.Type
	case MediaWidth:
		return i.Width
	case MediaHeight:
		return i.Height
	case MediaAlt:
		return i.Alt
	}
	return ""
}
