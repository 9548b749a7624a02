package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// LevelDBBackend dedupes on disk for wordlists that do not fit in memory
type LevelDBBackend struct {
	storage *hybrid.HybridMap
}

// NewLevelDBBackend opens a temporary disk backed set
func NewLevelDBBackend() (*LevelDBBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &LevelDBBackend{storage: db}, nil
}

func (l *LevelDBBackend) Upsert(elem string) {
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, elem)
	}
}

func (l *LevelDBBackend) IterCallback(callback func(elem string)) {
	l.storage.Scan(func(k, _ []byte) error {
		callback(string(k))
		return nil
	})
}

// Cleanup closes the store, hybrid removes its temp dir on close
func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
