package dedupe

import "runtime/debug"

const (
	// average candidate length used to presize the set
	avgWordLen = 12
	maxPresize = 1 << 20
)

type MapBackend struct {
	storage map[string]struct{}
	// free memory on cleanup when the set was large
	release bool
}

// NewMapBackend returns an in-memory set sized for roughly byteLen bytes of input
func NewMapBackend(byteLen int) *MapBackend {
	size := byteLen / avgWordLen
	if size > maxPresize {
		size = maxPresize
	}
	return &MapBackend{
		storage: make(map[string]struct{}, size),
		release: byteLen > 1024*1024,
	}
}

func (m *MapBackend) Upsert(elem string) {
	m.storage[elem] = struct{}{}
}

func (m *MapBackend) IterCallback(callback func(elem string)) {
	for k := range m.storage {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	if m.release {
		// GC keeps freed memory around for reuse, hand it back at once
		debug.FreeOSMemory()
	}
}
