package pure

// Table is a memo table for a pure function, keyed by its comparable input.
//
// A Table is meant to be owned by one evaluation: create it when the
// evaluation starts and drop it when it returns. It is not safe for
// concurrent use, so sharing it across goroutines needs outside locking.
type Table[K comparable, V any] struct {
	memo map[K]V
}

// NewTable returns an empty table. sizeHint preallocates room for that many
// entries and may be 0.
func NewTable[K comparable, V any](sizeHint int) *Table[K, V] {
	if sizeHint < 0 {
		panic("sizeHint should not be negative")
	}
	return &Table[K, V]{memo: make(map[K]V, sizeHint)}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	v, ok := t.memo[key]
	return v, ok
}

func (t *Table[K, V]) Store(key K, value V) {
	t.memo[key] = value
}

// LoadOrCompute returns the stored value for key, or calls pureFn, stores its
// result and returns it. loaded reports whether the value came from the table.
// pureFn may itself use the table.
func (t *Table[K, V]) LoadOrCompute(key K, pureFn func() V) (v V, loaded bool) {
	if v, ok := t.memo[key]; ok {
		return v, true
	}
	v = pureFn()
	t.memo[key] = v
	return v, false
}

func (t *Table[K, V]) Len() int {
	return len(t.memo)
}
