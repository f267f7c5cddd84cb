// Package binding carries configuration through a context as key/value scopes.
//
// A scope is installed with WithBindings. Lookups search the innermost scope
// first and fall back to upper scopes, so a subcommand can override a single
// key without repeating the rest.
package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/tarai/shared/helper"
)

// ErrKeyNotFound is returned when no scope in the context binds the key.
var ErrKeyNotFound = errors.New("key not found")

type bindingKey struct{}

type scope struct {
	bindingMap map[string]any
	upper      *scope
}

// WithBindings returns a context with a new binding scope on top of any scope
// already in ctx. The map is copied.
func WithBindings(ctx context.Context, bindingMap map[string]any) context.Context {
	s := &scope{
		bindingMap: normalizeBindingMap(bindingMap),
		upper:      scopeOf(ctx),
	}
	return context.WithValue(ctx, bindingKey{}, s)
}

// Lookup returns the value bound to key in the innermost scope that has it.
func Lookup(ctx context.Context, key string) (any, error) {
	for s := scopeOf(ctx); s != nil; s = s.upper {
		if v, ok := s.bindingMap[key]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}

// Get fetches a typed value bound to key.
// Returns a zero value and error if the key is not found or the type is mismatched.
func Get[T any](ctx context.Context, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Lookup(ctx, key)
	})
}

// GetOr is Get with a fallback for a missing key. A value of the wrong type is
// still an error.
func GetOr[T any](ctx context.Context, key string, fallback T) (T, error) {
	v, err := Get[T](ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return fallback, nil
	}
	return v, err
}

// MustGet is the panic-on-failure variant of Get.
func MustGet[T any](ctx context.Context, key string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return Lookup(ctx, key)
	})
}

func scopeOf(ctx context.Context) *scope {
	s, _ := ctx.Value(bindingKey{}).(*scope)
	return s
}

func normalizeBindingMap(bm map[string]any) map[string]any {
	copied := make(map[string]any, len(bm))
	for k, v := range bm {
		copied[k] = v
	}
	return copied
}
