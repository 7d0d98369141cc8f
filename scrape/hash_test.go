package scrape_test

import (
	"testing"

	"github.com/fwojciec/ogp/scrape"
	"github.com/stretchr/testify/assert"
)

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ef46db3751d8e999", scrape.HashContent(""))
	assert.Len(t, scrape.HashContent("<html></html>"), 16)
	assert.Equal(t, scrape.HashContent("<html></html>"), scrape.HashContent("<html></html>"))
	assert.NotEqual(t, scrape.HashContent("<html>a</html>"), scrape.HashContent("<html>b</html>"))
}
