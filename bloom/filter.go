// Package bloom provides URL de-duplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFPRate is the false positive rate Dedup uses when given none.
const DefaultFPRate = 0.0001

// Filter wraps a Bloom filter for URL de-duplication.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the URL might already be in the filter and
// adds it. False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// Dedup returns urls without repeats, keeping first occurrences in order.
// The filter alone decides what counts as a repeat: every repeat is
// dropped, and each distinct URL is dropped with probability fpRate.
// An fpRate outside (0, 1) uses DefaultFPRate.
func Dedup(urls []string, fpRate float64) []string {
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFPRate
	}
	seen := NewFilter(uint(len(urls)), fpRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}
