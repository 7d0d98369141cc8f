package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/ogp"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// record is the printed form of one extraction result.
type record struct {
	ID        string           `json:"id,omitempty" yaml:"id,omitempty"`
	Source    string           `json:"source,omitempty" yaml:"source,omitempty"`
	FetchedAt string           `json:"fetchedAt,omitempty" yaml:"fetched_at,omitempty"`
	Valid     bool             `json:"valid" yaml:"valid"`
	Errors    []ogp.FieldError `json:"errors" yaml:"errors"`
	Metadata  *ogp.Metadata    `json:"metadata" yaml:"metadata"`
}

func newRecord(source string, m *ogp.Metadata) record {
	return record{
		Source:   source,
		Valid:    m.Valid(),
		Errors:   nonNil(m.Errors()),
		Metadata: m,
	}
}

// snapshotRecord reports the errors captured when the snapshot was taken.
func snapshotRecord(s *ogp.Snapshot) record {
	r := record{
		ID:       s.ID,
		Source:   s.SourceURL,
		Valid:    s.Valid(),
		Errors:   nonNil(s.Errors),
		Metadata: s.Metadata,
	}
	if !s.FetchedAt.IsZero() {
		r.FetchedAt = s.FetchedAt.Format(time.RFC3339)
	}
	return r
}

func nonNil(errs []ogp.FieldError) []ogp.FieldError {
	if errs == nil {
		return []ogp.FieldError{}
	}
	return errs
}

// writeRecord prints a single record. JSON and YAML print an object.
func writeRecord(w io.Writer, format string, r record) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, r)
	case FormatYAML:
		return encodeYAML(w, r)
	default:
		writeText(w, r)
		return nil
	}
}

// writeRecords prints a list of records. JSON and YAML print a list even
// when it holds one record.
func writeRecords(w io.Writer, format string, rs []record) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, rs)
	case FormatYAML:
		return encodeYAML(w, rs)
	default:
		for i, r := range rs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, r)
		}
		return nil
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, r record) {
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-12s %s\n", name+":", value)
		}
	}

	field("id", r.ID)
	field("source", r.Source)
	field("fetched_at", r.FetchedAt)

	m := r.Metadata
	field(ogp.PropertyTitle, m.Title)
	field(ogp.PropertyType, m.Type)
	field(ogp.PropertyURL, m.URL)
	field(ogp.PropertyDescription, m.Description)
	field(ogp.PropertySiteName, m.SiteName)
	field(ogp.PropertyDeterminer, m.Determiner)
	writeMedia(w, ogp.PropertyImage, m.Images)
	writeMedia(w, ogp.PropertyAudio, m.Audios)
	writeMedia(w, ogp.PropertyVideo, m.Videos)
	field(ogp.PropertyLocale, strings.Join(m.Locales, ", "))
	for _, name := range slices.Sorted(maps.Keys(m.Extensions)) {
		field(name, m.Extensions[name])
	}

	if r.Valid {
		field("valid", "yes")
		return
	}
	missing := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		missing = append(missing, fe.Field)
	}
	field("missing", strings.Join(missing, ", "))
}

func writeMedia(w io.Writer, kind string, items []ogp.MediaItem) {
	for _, item := range items {
		fmt.Fprintf(w, "%-12s %s\n", kind+":", item.URL)
		for _, name := range []string{ogp.MediaSecureURL, ogp.MediaType, ogp.MediaWidth, ogp.MediaHeight, ogp.MediaAlt} {
			if v := item.Get(name); v != "" {
				fmt.Fprintf(w, "  %-10s %s\n", name+":", v)
			}
		}
	}
}

// checkStrict fails when strict mode is on and any record is invalid.
func checkStrict(strict bool, rs []record) error {
	if !strict {
		return nil
	}
	var invalid int
	for _, r := range rs {
		if !r.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		return ogp.Errorf(ogp.EINVALID, "%d of %d pages lack required properties", invalid, len(rs))
	}
	return nil
}

// errorText returns the message of an application error, or the full
// error chain for anything else.
func errorText(err error) string {
	if ogp.ErrorCode(err) == ogp.EINTERNAL {
		return err.Error()
	}
	return ogp.ErrorMessage(err)
}
