// Package bloom provides record deduplication using Bloom filters.
package bloom

import (
	"encoding/binary"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/leis"
)

var _ leis.RecordFilter = (*Filter)(nil)

// Filter remembers the text content of records it has seen.
// It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected records
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether a record with the same title, summary and body was
// already passed to Seen, and remembers rec otherwise.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(rec *leis.LegalRecord) bool {
	key := Key(rec)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAdd(key)
}

// Key returns the filter key for rec: the xxHash digest of its text fields.
// Category and document link do not take part.
func Key(rec *leis.LegalRecord) []byte {
	d := xxhash.New()
	for _, s := range []string{rec.Title, rec.Summary, rec.Body} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return binary.BigEndian.AppendUint64(nil, d.Sum64())
}
