package tarai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyClosure_BaseCaseNeverForcesZ(t *testing.T) {
	var l lazyClosure
	assert.NotPanics(t, func() {
		v := l.t(1, 2, func() int { panic("z must not be forced") })
		assert.Equal(t, 2, v)
	})
	assert.Zero(t, l.Forces)
}

func TestLazyClosure_ForcesZOncePerEntry(t *testing.T) {
	var l lazyClosure
	forced := 0
	v := l.t(10, 5, func() int {
		forced++
		return 0
	})
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, forced)
}

func TestLazyEnum_BaseCaseLeavesThunkPending(t *testing.T) {
	var l lazyEnum
	// Forcing this thunk would take about 12 million calls eagerly; the lazy
	// path must not touch it at all.
	v := l.t(1, 2, pending(12, 6, 0))
	assert.Equal(t, 2, v)
	assert.Equal(t, Stats{Calls: 1}, l.Stats)
}

func TestThunk_PendingResolvesOnce(t *testing.T) {
	var l lazyEnum
	th := pending(10, 5, 0)
	assert.Equal(t, thunkPending, th.state)

	assert.Equal(t, 10, l.force(&th))
	assert.Equal(t, thunkResolved, th.state)
	calls := l.Calls

	// Resolved is terminal: forcing again does no work.
	assert.Equal(t, 10, l.force(&th))
	assert.Equal(t, calls, l.Calls)
	assert.Equal(t, thunkResolved, th.state)
}

func TestThunk_ResolvedHoldsValue(t *testing.T) {
	var l lazyEnum
	th := resolved(42)
	assert.Equal(t, 42, l.force(&th))
	assert.Zero(t, l.Calls)
}
