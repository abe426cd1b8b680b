package contract

import (
	"sort"
	"sync"
)

// State is the key/value store the contract keeps all records in.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemState is the bundled in-memory State.
type MemState struct {
	mu sync.RWMutex
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.mu.Lock()
	m.db[key] = value
	m.mu.Unlock()
}

func (m *MemState) Get(key string) *string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	m.mu.Lock()
	delete(m.db, key)
	m.mu.Unlock()
}

// Len returns the number of stored keys.
func (m *MemState) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

// keys returns all keys sorted, for deterministic dumps.
func (m *MemState) keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.db))
	for k := range m.db {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// overlay buffers the writes of one operation on top of a base State. Nothing
// reaches the base until commit, so a failed operation is dropped by simply
// discarding the overlay.
type overlay struct {
	base   State
	writes map[string]*string // nil marks a delete
	order  []string
}

func newOverlay(base State) *overlay {
	return &overlay{base: base, writes: make(map[string]*string)}
}

func (o *overlay) Set(key, value string) {
	o.touch(key)
	o.writes[key] = &value
}

func (o *overlay) Get(key string) *string {
	if v, ok := o.writes[key]; ok {
		if v == nil {
			return nil
		}
		val := *v
		return &val
	}
	return o.base.Get(key)
}

func (o *overlay) Delete(key string) {
	o.touch(key)
	o.writes[key] = nil
}

func (o *overlay) touch(key string) {
	if _, seen := o.writes[key]; !seen {
		o.order = append(o.order, key)
	}
}

// dirty reports whether the overlay holds any pending write.
func (o *overlay) dirty() bool {
	return len(o.order) > 0
}

// commit replays the buffered writes onto the base in first-touch order.
func (o *overlay) commit() {
	for _, k := range o.order {
		if v := o.writes[k]; v != nil {
			o.base.Set(k, *v)
		} else {
			o.base.Delete(k)
		}
	}
	o.writes = make(map[string]*string)
	o.order = nil
}

// stateSetIfChanged avoids rewriting identical values.
func stateSetIfChanged(st State, key, value string) {
	if existing := st.Get(key); existing != nil && *existing == value {
		return
	}
	st.Set(key, value)
}
