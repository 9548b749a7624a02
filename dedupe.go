package leetlist

import (
	"slices"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/leetlist/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
// wordlists estimated above this size are deduped on disk
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert add/update key to backend/database
	Upsert(elem string)
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe collects candidates from a channel into a set
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drain consumes the channel until it is closed
func (d *Dedupe) Drain() {
	for val := range d.receive {
		d.backend.Upsert(val)
	}
}

// Sorted returns the unique candidates in ascending order and releases the backend
func (d *Dedupe) Sorted() []string {
	var results []string
	d.backend.IterCallback(func(elem string) {
		results = append(results, elem)
	})
	d.backend.Cleanup()
	slices.Sort(results)
	return results
}

// NewDedupe returns a dedupe instance for ch.
// byteLen is the estimated size of everything sent on ch
func NewDedupe(ch <-chan string, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend(byteLen)
		return d
	}
	gologger.Verbose().Msgf("estimated wordlist size %v exceeds in-memory limit, deduping on disk", byteLen)
	backend, err := dedupe.NewLevelDBBackend()
	if err != nil {
		gologger.Warning().Msgf("failed to create disk dedupe backend got %v, falling back to memory", err)
		d.backend = dedupe.NewMapBackend(MaxInMemoryDedupeSize)
		return d
	}
	d.backend = backend
	return d
}
