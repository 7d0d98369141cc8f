// Package ogp extracts Open Graph Protocol metadata from HTML documents.
// It turns the og:-prefixed meta tags of a page's head into a typed record
// with ordered image, audio and video items, and reports which required
// properties are missing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package ogp
