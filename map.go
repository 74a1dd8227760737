package nfa

import (
	"iter"
)

// Hashable Keys of a HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap A chained hash map over Hashable keys. Iteration yields entries in insertion
// order, which keeps everything built on top of it deterministic.
type HashMap[K Hashable, V any] struct {
	buckets    []*entry[K, V]
	order      []*entry[K, V]
	mask       uint64
	loadFactor float64
}

type entry[K Hashable, V any] struct {
	hash  uint64
	key   K
	value V
	next  *entry[K, V]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity Initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// WithLoadFactor Grow the table once size/buckets exceeds loadFactor.
func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.loadFactor = loadFactor
	}
}

func NewHashMap[K Hashable, V any](options ...OptionsHashMap) *HashMap[K, V] {
	opts := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range options {
		fn(opts)
	}
	if opts.loadFactor <= 0 {
		opts.loadFactor = 0.75
	}

	realCap := 1
	for realCap < opts.capacity {
		realCap <<= 1
	}

	return &HashMap[K, V]{
		buckets:    make([]*entry[K, V], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: opts.loadFactor,
	}
}

func (m *HashMap[K, V]) find(key K) (*entry[K, V], uint64) {
	hash := key.Hash()
	for e := m.buckets[hash&m.mask]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			return e, hash
		}
	}
	return nil, hash
}

// Set Insert or update the value for key.
func (m *HashMap[K, V]) Set(key K, value V) {
	e, hash := m.find(key)
	if e != nil {
		e.value = value
		return
	}

	index := hash & m.mask
	e = &entry[K, V]{
		hash:  hash,
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.buckets[index] = e
	m.order = append(m.order, e)

	if float64(len(m.order))/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get Returns the value stored for key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if e, _ := m.find(key); e != nil {
		return e.value, true
	}
	var empty V
	return empty, false
}

func (m *HashMap[K, V]) Contains(key K) bool {
	e, _ := m.find(key)
	return e != nil
}

// Size Number of entries.
func (m *HashMap[K, V]) Size() int {
	return len(m.order)
}

// All Iterates entries in insertion order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.order {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Rehash every entry into a table twice as large.
func (m *HashMap[K, V]) resize() {
	newCap := len(m.buckets) << 1
	newMask := uint64(newCap - 1)
	newBuckets := make([]*entry[K, V], newCap)

	for _, e := range m.order {
		index := e.hash & newMask
		e.next = newBuckets[index]
		newBuckets[index] = e
	}

	m.buckets = newBuckets
	m.mask = newMask
}
