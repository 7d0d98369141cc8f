package goquery_test

import (
	"testing"

	"github.com/fwojciec/ogp"
	"github.com/fwojciec/ogp/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, head string) *ogp.Metadata {
	t.Helper()
	doc, err := goquery.Load(page(head))
	require.NoError(t, err)
	return doc.Extract()
}

func TestDocument_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts optional attributes", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:title" content="The Rock">
<meta property="og:type" content="video.movie">
<meta property="og:url" content="http://www.imdb.com/title/tt0117500/">
<meta property="og:image" content="http://ia.media-imdb.com/images/rock.jpg">
<meta property="og:audio" content="http://example.com/bond/theme.mp3">
<meta property="og:description" content="Sean Connery found fame and fortune as the suave, sophisticated British agent, James Bond.">
<meta property="og:determiner" content="the">
<meta property="og:locale" content="en_GB">
<meta property="og:locale:alternate" content="fr_FR">
<meta property="og:locale:alternate" content="es_ES">
<meta property="og:site_name" content="IMDb">
<meta property="og:video" content="http://example.com/bond/trailer.swf">`)

		require.Len(t, m.Audios, 1)
		assert.Equal(t, "http://example.com/bond/theme.mp3", m.Audios[0].URL)
		assert.Equal(t, "Sean Connery found fame and fortune as the suave, sophisticated British agent, James Bond.", m.Description)
		assert.Equal(t, "the", m.Determiner)
		assert.Equal(t, []string{"en_GB", "fr_FR", "es_ES"}, m.Locales)
		assert.Equal(t, "IMDb", m.SiteName)
		require.Len(t, m.Videos, 1)
		assert.Equal(t, "http://example.com/bond/trailer.swf", m.Videos[0].URL)
		assert.Empty(t, m.Extensions)
	})

	t.Run("extracts image structured attributes", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/ogp.jpg">
<meta property="og:image:secure_url" content="https://secure.example.com/ogp.jpg">
<meta property="og:image:type" content="image/jpeg">
<meta property="og:image:width" content="400">
<meta property="og:image:height" content="300">
<meta property="og:image:alt" content="A shiny red apple with a bite taken out">`)

		require.NotNil(t, m.Image())
		assert.Equal(t, ogp.MediaItem{
			URL:       "http://example.com/ogp.jpg",
			SecureURL: "https://secure.example.com/ogp.jpg",
			Type:      "image/jpeg",
			Width:     "400",
			Height:    "300",
			Alt:       "A shiny red apple with a bite taken out",
		}, *m.Image())
	})

	t.Run("extracts audio structured attributes", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:audio" content="http://example.com/sound.ogg">
<meta property="og:audio:secure_url" content="https://secure.example.com/sound.ogg">
<meta property="og:audio:type" content="audio/ogg">`)

		require.Len(t, m.Audios, 1)
		assert.Equal(t, "http://example.com/sound.ogg", m.Audios[0].URL)
		assert.Equal(t, "https://secure.example.com/sound.ogg", m.Audios[0].SecureURL)
		assert.Equal(t, "audio/ogg", m.Audios[0].Type)
	})

	t.Run("extracts video structured attributes", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:video" content="http://example.com/movie.swf">
<meta property="og:video:secure_url" content="https://secure.example.com/movie.swf">
<meta property="og:video:type" content="application/x-shockwave-flash">
<meta property="og:video:width" content="400">
<meta property="og:video:height" content="300">`)

		require.Len(t, m.Videos, 1)
		assert.Equal(t, ogp.MediaItem{
			URL:       "http://example.com/movie.swf",
			SecureURL: "https://secure.example.com/movie.swf",
			Type:      "application/x-shockwave-flash",
			Width:     "400",
			Height:    "300",
		}, m.Videos[0])
	})

	t.Run("attaches structured attributes to the most recent item", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/ogp1.jpg">
<meta property="og:image:type" content="image/jpeg">
<meta property="og:image:width" content="400">
<meta property="og:image:height" content="300">
<meta property="og:image" content="http://example.com/ogp2.jpg">
<meta property="og:image:type" content="image/jpeg">
<meta property="og:image:width" content="600">
<meta property="og:image:height" content="500">`)

		assert.Equal(t, []ogp.MediaItem{
			{URL: "http://example.com/ogp1.jpg", Type: "image/jpeg", Width: "400", Height: "300"},
			{URL: "http://example.com/ogp2.jpg", Type: "image/jpeg", Width: "600", Height: "500"},
		}, m.Images)
	})

	t.Run("keeps media kinds apart when interleaved", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:video" content="http://example.com/a.mp4">
<meta property="og:image:width" content="100">
<meta property="og:video:width" content="1280">`)

		require.Len(t, m.Images, 1)
		require.Len(t, m.Videos, 1)
		assert.Equal(t, "100", m.Images[0].Width)
		assert.Equal(t, "1280", m.Videos[0].Width)
	})

	t.Run("drops structured attributes without a base item", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image:width" content="400">
<meta property="og:audio:type" content="audio/ogg">
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:image:height" content="300">`)

		assert.Equal(t, []ogp.MediaItem{{URL: "http://example.com/a.jpg", Height: "300"}}, m.Images)
		assert.Empty(t, m.Audios)
		assert.Empty(t, m.Extensions)
	})

	t.Run("maps hyphenated sub-properties to underscores", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:image:secure-url" content="https://example.com/a.jpg">`)

		require.NotNil(t, m.Image())
		assert.Equal(t, "https://example.com/a.jpg", m.Image().SecureURL)
	})

	t.Run("image:url overrides the base url", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:image:url" content="http://example.com/b.jpg">`)

		require.Len(t, m.Images, 1)
		assert.Equal(t, "http://example.com/b.jpg", m.Images[0].URL)
	})

	t.Run("matches names case-insensitively after the prefix", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:Title" content="Mixed">
<meta property="og:IMAGE" content="http://example.com/a.jpg">
<meta property="og:Image:Width" content="400">
<meta property="og:Site_Name" content="Site">`)

		assert.Equal(t, "Mixed", m.Title)
		assert.Equal(t, "Site", m.SiteName)
		require.Len(t, m.Images, 1)
		assert.Equal(t, "400", m.Images[0].Width)
	})

	t.Run("collects every locale-prefixed name", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:locale" content="en_US">
<meta property="og:title" content="Title">
<meta property="og:locale:alternate" content="de_DE">
<meta property="og:localeish" content="xx_XX">`)

		assert.Equal(t, []string{"en_US", "de_DE", "xx_XX"}, m.Locales)
		assert.Equal(t, "Title", m.Title)
	})

	t.Run("stores unknown properties as extensions with last write winning", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:updated_time" content="2024-01-01">
<meta property="og:rating" content="3">
<meta property="og:rating" content="5">
<meta property="og:title" content="first">
<meta property="og:title" content="second">`)

		assert.Equal(t, map[string]string{
			"updated_time": "2024-01-01",
			"rating":       "5",
		}, m.Extensions)
		assert.Equal(t, "second", m.Title)
	})

	t.Run("treats empty structured suffix as a scalar", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:image:" content="dangling">`)

		assert.Equal(t, []ogp.MediaItem{{URL: "http://example.com/a.jpg"}}, m.Images)
		assert.Equal(t, "dangling", m.Extensions["image:"])
	})

	t.Run("ignores unknown structured properties", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:image" content="http://example.com/a.jpg">
<meta property="og:image:user_generated" content="true">`)

		assert.Equal(t, []ogp.MediaItem{{URL: "http://example.com/a.jpg"}}, m.Images)
		assert.Empty(t, m.Extensions)
	})

	t.Run("missing content becomes empty strings", func(t *testing.T) {
		t.Parallel()

		m := extract(t, `
<meta property="og:title">
<meta property="og:image">
<meta property="og:image:width">
<meta property="og:locale">`)

		assert.Empty(t, m.Title)
		assert.Equal(t, []ogp.MediaItem{{}}, m.Images)
		assert.Equal(t, []string{""}, m.Locales)
	})
}
