package dispatch_test

import (
	"context"
	"sync"
	"testing"

	"github.com/on-the-ground/tarai/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dummyMessage implements Partitionable for testing partitioned dispatching.
type dummyMessage struct {
	id    int
	group string
}

func (d dummyMessage) PartitionKey() string {
	return d.group
}

func TestDispatcher_SingleWorkerHandlesInOrder(t *testing.T) {
	ctx := context.Background()

	var called []int // one worker: no lock needed until Close returns
	d := dispatch.New(ctx, dispatch.Config{}, func(_ context.Context, msg dummyMessage) {
		called = append(called, msg.id)
	})

	for i := 1; i <= 5; i++ {
		require.NoError(t, d.Send(ctx, dummyMessage{id: i, group: "g" + string(rune('a'+i))}))
	}
	d.Close()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, called)
}

// Test that the partitioned dispatcher keeps each partition on one worker, in order.
func TestDispatcher_PreservesOrderPerPartition(t *testing.T) {
	ctx := context.Background()

	var (
		mu        sync.Mutex
		workerHit = make(map[string][]int)
	)
	d := dispatch.New(ctx, dispatch.NewConfig(10, 4), func(_ context.Context, msg dummyMessage) {
		mu.Lock()
		workerHit[msg.group] = append(workerHit[msg.group], msg.id)
		mu.Unlock()
	})

	msgs := []dummyMessage{
		{1, "groupA"},
		{2, "groupB"},
		{3, "groupA"},
		{4, "groupB"},
		{5, "groupA"},
	}
	for _, msg := range msgs {
		require.NoError(t, d.Send(ctx, msg))
	}
	d.Close() // waits for the workers

	assert.Equal(t, []int{1, 3, 5}, workerHit["groupA"])
	assert.Equal(t, []int{2, 4}, workerHit["groupB"])

	assert.Equal(t,
		d.QueueOf(dummyMessage{group: "groupA"}),
		d.QueueOf(dummyMessage{id: 99, group: "groupA"}),
	)
}

func TestDispatcher_SpreadsPartitions(t *testing.T) {
	d := dispatch.New(context.Background(), dispatch.NewConfig(1, 8), func(context.Context, dummyMessage) {})
	defer d.Close()

	seen := make(map[chan<- dummyMessage]struct{})
	for _, g := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		seen[d.QueueOf(dummyMessage{group: g})] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestDispatcher_SendGivesUpOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})

	d := dispatch.New(ctx, dispatch.NewConfig(1, 1), func(context.Context, dummyMessage) {
		<-block
	})
	require.NoError(t, d.Send(ctx, dummyMessage{id: 1})) // taken by the worker or queued
	cancel()

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = d.Send(ctx, dummyMessage{id: i})
	}
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
	d.Close()
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	handled := 0
	d := dispatch.New(context.Background(), dispatch.Config{}, func(context.Context, dummyMessage) {
		handled++
	})
	require.NoError(t, d.Send(context.Background(), dummyMessage{id: 1}))
	d.Close()
	d.Close()
	assert.Equal(t, 1, handled)
}

func TestNewConfig_Defaults(t *testing.T) {
	assert.Equal(t, dispatch.Config{BufferSize: 1, NumWorkers: 1}, dispatch.NewConfig(0, -3))
	assert.Equal(t, dispatch.Config{BufferSize: 5, NumWorkers: 2}, dispatch.NewConfig(5, 2))
}
