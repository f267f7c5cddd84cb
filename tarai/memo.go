package tarai

import "github.com/on-the-ground/tarai/pure"

type triple struct {
	x, y, z int
}

type memo struct {
	Stats
	table *pure.Table[triple, int]
}

func newMemo() *memo {
	return &memo{table: pure.NewTable[triple, int](0)}
}

func (m *memo) t(x, y, z int) int {
	m.Calls++
	if x <= y {
		return y
	}
	a := m.getOrCall(x-1, y, z)
	b := m.getOrCall(y-1, z, x)
	c := m.getOrCall(z-1, x, y)
	return m.getOrCall(a, b, c)
}

// getOrCall consults the table before recursing and records the result after.
func (m *memo) getOrCall(x, y, z int) int {
	v, loaded := m.table.LoadOrCompute(triple{x, y, z}, func() int {
		return m.t(x, y, z)
	})
	if loaded {
		m.Hits++
	}
	return v
}

// Memo evaluates tarai with a memo table keyed by (x, y, z). The table is
// created empty for this call and discarded when it returns.
func Memo(x, y, z int) int {
	return newMemo().t(x, y, z)
}

// MemoStats is Memo plus the call statistics of the evaluation.
func MemoStats(x, y, z int) (int, Stats) {
	m := newMemo()
	v := m.t(x, y, z)
	return v, m.Stats
}
