package dispatch

import (
	"context"
	"sync"
)

// Partitionable routes a message to a worker. Messages with the same key are
// handled by the same worker, in the order they were sent.
type Partitionable interface {
	PartitionKey() string
}

type Config struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewConfig(bufferSize int, numWorkers int) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Dispatcher fans messages out to a fixed set of workers, one queue each.
//
// Send is for a single producer. Once the producer is done it calls Close,
// which lets the workers drain their queues and waits for them to return.
type Dispatcher[T Partitionable] struct {
	queues    []chan T
	workers   sync.WaitGroup
	closeOnce sync.Once
}

// New starts config.NumWorkers workers running handleFn. handleFn receives ctx
// and should give up on blocking work once ctx is done.
func New[T Partitionable](
	ctx context.Context,
	config Config,
	handleFn func(context.Context, T),
) *Dispatcher[T] {
	config = NewConfig(config.BufferSize, config.NumWorkers)
	d := &Dispatcher[T]{queues: make([]chan T, config.NumWorkers)}

	ready := sync.WaitGroup{}
	ready.Add(config.NumWorkers)
	d.workers.Add(config.NumWorkers)
	for i := range d.queues {
		q := make(chan T, config.BufferSize)
		d.queues[i] = q
		go func() {
			defer d.workers.Done()
			ready.Done()
			for msg := range q {
				handleFn(ctx, msg)
			}
		}()
	}
	ready.Wait()
	return d
}

// QueueOf is the queue msg is routed to.
func (d *Dispatcher[T]) QueueOf(msg T) chan<- T {
	return d.queues[getIndexByHash(msg, len(d.queues))]
}

// Send queues msg for its worker, or gives up when ctx is done.
// It must not be called after Close.
func (d *Dispatcher[T]) Send(ctx context.Context, msg T) error {
	select {
	case d.QueueOf(msg) <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting messages and blocks until every worker has handled
// what was already queued. Later calls are no-ops.
func (d *Dispatcher[T]) Close() {
	d.closeOnce.Do(func() {
		for _, q := range d.queues {
			close(q)
		}
		d.workers.Wait()
	})
}
