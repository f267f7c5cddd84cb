// Package orderedbuffer re-sequences values that arrive out of order.
//
// Values are kept sorted in a bounded window and the smallest is released only
// when a gate accepts it. Nothing is evicted: the producer must keep the number
// of unreleased values within the window.
package orderedbuffer

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
)

var (
	// ErrClosedBuffer is returned by Insert after Close.
	ErrClosedBuffer = errors.New("buffer is closed")
	// ErrBufferFull is returned by Insert when the window is already full.
	ErrBufferFull = errors.New("buffer is full")
)

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer is written by a single goroutine and read through
// Source by another.
type OrderedBoundedBuffer[T any] struct {
	window    []T
	maxBufLen int
	compare   CompareFunc[T]
	ready     func(head T) bool

	sink   chan T
	closed atomic.Bool
}

// NewOrderedBoundedBuffer returns a buffer that releases its smallest value
// only when ready returns true for it. ready is called on the head of the
// window, once per release attempt, and a true result commits the release.
func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T], ready func(head T) bool) *OrderedBoundedBuffer[T] {
	if ready == nil {
		panic("ready should not be nil")
	}
	if maxBufLen <= 0 {
		maxBufLen = 1
	}
	return &OrderedBoundedBuffer[T]{
		window:    make([]T, 0, maxBufLen),
		maxBufLen: maxBufLen,
		compare:   cmp,
		ready:     ready,
		sink:      make(chan T, maxBufLen),
	}
}

// Insert places val in the window and releases what it can to Source,
// blocking until the released values are taken or ctx is done.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) error {
	if b.closed.Load() {
		return ErrClosedBuffer
	}
	if len(b.window) >= b.maxBufLen {
		return ErrBufferFull
	}

	idx := sort.Search(len(b.window), func(i int) bool {
		return b.compare(val, b.window[i]) < 0
	})
	b.window = append(b.window, val)
	copy(b.window[idx+1:], b.window[idx:])
	b.window[idx] = val

	for len(b.window) > 0 && b.ready(b.window[0]) {
		if err := b.release(ctx); err != nil {
			return err
		}
	}
	return nil
}

// release sends the head of the window to Source.
func (b *OrderedBoundedBuffer[T]) release(ctx context.Context) error {
	head := b.window[0]
	b.window = b.window[1:]
	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.sink <- head:
		return nil
	}
}

func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Len is the number of values held back in the window.
func (b *OrderedBoundedBuffer[T]) Len() int {
	return len(b.window)
}

// Close flushes the window in order, ignoring the gate, and closes Source. Later
// calls are no-ops. It blocks until the flush is taken from Source or ctx is
// done.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	defer close(b.sink)

	for _, v := range b.window {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- v:
		}
	}
	b.window = nil
	return nil
}
