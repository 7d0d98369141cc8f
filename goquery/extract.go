package goquery

import (
	"strings"

	"github.com/fwojciec/ogp"
)

// rule classifies a lower-cased property name (without og:) and applies the
// tag's content to the record. match returns the part of the name the
// handler needs, such as a structured property suffix.
type rule struct {
	match func(name string) (arg string, ok bool)
	apply func(m *ogp.Metadata, arg, content string)
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{exact(ogp.PropertyImage), func(m *ogp.Metadata, _, content string) { m.AddImage(content) }},
	{structured(ogp.PropertyImage), func(m *ogp.Metadata, sub, content string) { setLast(m.Images, sub, content) }},
	{exact(ogp.PropertyAudio), func(m *ogp.Metadata, _, content string) { m.AddAudio(content) }},
	{structured(ogp.PropertyAudio), func(m *ogp.Metadata, sub, content string) { setLast(m.Audios, sub, content) }},
	{exact(ogp.PropertyVideo), func(m *ogp.Metadata, _, content string) { m.AddVideo(content) }},
	{structured(ogp.PropertyVideo), func(m *ogp.Metadata, sub, content string) { setLast(m.Videos, sub, content) }},
	{prefixed(ogp.PropertyLocale), func(m *ogp.Metadata, _, content string) { m.AddLocale(content) }},
	{scalar, func(m *ogp.Metadata, name, content string) { m.SetProperty(name, content) }},
}

// Extract walks the document's og: meta tags in order and builds a record.
// Extraction never fails: missing content attributes become empty strings
// and structured properties without a preceding base tag are dropped.
//
// The returned record is bound to d, so its Valid and Errors methods query
// the document.
func (d *Document) Extract() *ogp.Metadata {
	m := ogp.NewMetadata(d)
	for _, p := range d.Properties() {
		name := strings.ToLower(strings.TrimPrefix(p.Name, propertyPrefix))
		for _, r := range rules {
			if arg, ok := r.match(name); ok {
				r.apply(m, arg, p.Content)
				break
			}
		}
	}
	return m
}

// setLast sets a structured property on the most recent item. Hyphens in
// the property name map to underscores (secure-url is secure_url).
func setLast(items []ogp.MediaItem, sub, content string) {
	if len(items) == 0 {
		return
	}
	items[len(items)-1].Set(strings.ReplaceAll(sub, "-", "_"), content)
}

func exact(want string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		return name, name == want
	}
}

// structured matches "<kind>:<sub>" with a non-empty sub and returns sub.
func structured(kind string) func(string) (string, bool) {
	prefix := kind + ":"
	return func(name string) (string, bool) {
		sub, ok := strings.CutPrefix(name, prefix)
		return sub, ok && sub != ""
	}
}

func prefixed(prefix string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		return name, strings.HasPrefix(name, prefix)
	}
}

func scalar(name string) (string, bool) {
	return name, true
}
