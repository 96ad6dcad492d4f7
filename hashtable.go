package hashadt

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	initialCapacity = 16
	loadThreshold   = 0.75
	resizeFactor    = 2
)

// PrintFunc formats one key-value pair onto w. It is invoked only by Dump,
// once per occupied bucket.
type PrintFunc[K, V any] func(w io.Writer, key K, value V)

// CleanupFunc releases resources referenced by a pair. Destroy invokes it
// exactly once per surviving pair, in bucket-scan order.
type CleanupFunc[K, V any] func(key K, value V)

// pair is one stored key-value association. When the table grows, pairs are
// relocated into the new bucket array, never recreated.
type pair[K, V any] struct {
	key   K
	value V
}

// bucket is one slot in the backing array, either empty or holding one pair.
// An occupied bucket never holds a nil pair.
type bucket[K, V any] struct {
	pair     *pair[K, V]
	occupied bool
}

// Table is a hash table using open addressing with linear probing. Keys and
// values are arbitrary types; the caller supplies the hash and equality
// functions at construction, with equal keys required to hash identically.
//
// The table stores whatever the caller passes in; any resources a key or
// value refers to remain the caller's to keep alive and to release, with the
// cleanup callback as the release hook at Destroy time.
//
// A Table is not safe for concurrent use.
type Table[K, V any] struct {
	buckets  []bucket[K, V]
	size     int
	rehashes int
	hash     func(K) uint64
	equals   func(K, K) bool
	print    PrintFunc[K, V]
	cleanup  CleanupFunc[K, V]
}

// New creates an empty table with capacity 16. hash and equals are required;
// print and cleanup may be nil, in which case Dump omits the per-bucket
// listing and Destroy skips the per-pair hook.
func New[K, V any](
	hash func(K) uint64,
	equals func(K, K) bool,
	print PrintFunc[K, V],
	cleanup CleanupFunc[K, V],
) (*Table[K, V], error) {
	if hash == nil {
		return nil, errors.New("hash function is required")
	}
	if equals == nil {
		return nil, errors.New("equals function is required")
	}
	return &Table[K, V]{
		buckets: make([]bucket[K, V], initialCapacity),
		hash:    hash,
		equals:  equals,
		print:   print,
		cleanup: cleanup,
	}, nil
}

// Len returns the number of stored pairs.
func (t *Table[K, V]) Len() int { return t.size }

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int { return len(t.buckets) }

// Rehashes returns how many times the table has grown.
func (t *Table[K, V]) Rehashes() int { return t.rehashes }

func (t *Table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Get retrieves the value stored under key. The boolean is false when the
// key is absent.
func (t *Table[K, V]) Get(key K) (V, bool) {
	capacity := uint64(len(t.buckets))
	idx := t.hash(key) % capacity
	for t.buckets[idx].occupied {
		if t.equals(key, t.buckets[idx].pair.key) {
			return t.buckets[idx].pair.value, true
		}
		idx = (idx + 1) % capacity
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put stores value under key and returns the value it replaced, if any. When
// the key is already present only the value slot is updated; the stored key
// is left untouched. The table grows before insertion whenever the load
// factor has reached 0.75.
//
// Put panics when called on a nil or destroyed table.
func (t *Table[K, V]) Put(key K, value V) (V, bool) {
	if t == nil || t.buckets == nil {
		panic("hashadt: Put on nil or destroyed table")
	}
	if t.loadFactor() >= loadThreshold {
		t.resize()
	}

	capacity := uint64(len(t.buckets))
	idx := t.hash(key) % capacity
	for t.buckets[idx].occupied {
		if t.equals(key, t.buckets[idx].pair.key) {
			old := t.buckets[idx].pair.value
			t.buckets[idx].pair.value = value
			return old, true
		}
		idx = (idx + 1) % capacity
	}

	t.buckets[idx] = bucket[K, V]{
		pair:     &pair[K, V]{key: key, value: value},
		occupied: true,
	}
	t.size++

	var zero V
	return zero, false
}

// resize doubles the bucket array and relocates every pair to its slot under
// the new capacity. Probe order may differ from the old table since home
// slots change with capacity. The table never shrinks.
func (t *Table[K, V]) resize() {
	newCapacity := len(t.buckets) * resizeFactor
	t.rehashes++
	newBuckets := make([]bucket[K, V], newCapacity)
	for i := range t.buckets {
		if !t.buckets[i].occupied {
			continue
		}
		p := t.buckets[i].pair
		idx := t.hash(p.key) % uint64(newCapacity)
		for newBuckets[idx].occupied {
			idx = (idx + 1) % uint64(newCapacity)
		}
		newBuckets[idx] = bucket[K, V]{pair: p, occupied: true}
	}
	t.buckets = newBuckets
}

// Keys returns every stored key, exactly Len entries. Order is bucket-slot
// order, an artifact of probing history; callers must not rely on it.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for i := range t.buckets {
		if t.buckets[i].occupied {
			keys = append(keys, t.buckets[i].pair.key)
		}
	}
	return keys
}

// Values returns every stored value, exactly Len entries, in bucket-slot
// order.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for i := range t.buckets {
		if t.buckets[i].occupied {
			values = append(values, t.buckets[i].pair.value)
		}
	}
	return values
}

// Dump writes diagnostics for the table to w. It always reports size and
// capacity. When verbose it adds the collision count (occupied buckets whose
// index differs from their key's home slot), the rehash count, and, if a
// print callback was supplied, one line per bucket index in index order.
//
// Dump panics when called on a nil table.
func (t *Table[K, V]) Dump(w io.Writer, verbose bool) {
	if t == nil {
		panic("hashadt: Dump on nil table")
	}
	fmt.Fprintf(w, "Size: %d\n", t.size)
	fmt.Fprintf(w, "Capacity: %d\n", len(t.buckets))
	if !verbose {
		return
	}

	capacity := uint64(len(t.buckets))
	collisions := 0
	for i := range t.buckets {
		if t.buckets[i].occupied && uint64(i) != t.hash(t.buckets[i].pair.key)%capacity {
			collisions++
		}
	}
	fmt.Fprintf(w, "Collisions: %d\n", collisions)
	fmt.Fprintf(w, "Rehashes: %d\n", t.rehashes)

	if t.print == nil {
		return
	}
	for i := range t.buckets {
		if t.buckets[i].occupied {
			fmt.Fprintf(w, "%d : ( ", i)
			t.print(w, t.buckets[i].pair.key, t.buckets[i].pair.value)
			fmt.Fprint(w, " )\n")
		} else {
			fmt.Fprintf(w, "%d : null\n", i)
		}
	}
}

// Destroy releases the table. If a cleanup callback was supplied it is
// invoked exactly once per surviving pair, in bucket-scan order, before the
// backing array is dropped. The table must not be used after Destroy.
//
// Destroy panics when called on a nil table.
func (t *Table[K, V]) Destroy() {
	if t == nil {
		panic("hashadt: Destroy on nil table")
	}
	if t.cleanup != nil {
		for i := range t.buckets {
			if t.buckets[i].occupied {
				t.cleanup(t.buckets[i].pair.key, t.buckets[i].pair.value)
			}
		}
	}
	t.buckets = nil
	t.size = 0
}
