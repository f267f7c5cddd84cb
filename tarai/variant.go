package tarai

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by ParseVariant for a name no variant has.
var ErrUnknownVariant = errors.New("unknown variant")

// Func is the common signature of every evaluator.
type Func func(x, y, z int) int

// Variant names one evaluation strategy.
type Variant string

const (
	VariantNaive       Variant = "naive"
	VariantMemo        Variant = "memo"
	VariantLazyClosure Variant = "lazy-closure"
	VariantLazyEnum    Variant = "lazy-enum"
)

type variantFuncs struct {
	eval  Func
	stats func(x, y, z int) (int, Stats)
}

var variants = map[Variant]variantFuncs{
	VariantNaive:       {Naive, NaiveStats},
	VariantMemo:        {Memo, MemoStats},
	VariantLazyClosure: {LazyClosure, LazyClosureStats},
	VariantLazyEnum:    {LazyEnum, LazyEnumStats},
}

// Variants returns every variant, baseline first.
func Variants() []Variant {
	return []Variant{VariantNaive, VariantMemo, VariantLazyClosure, VariantLazyEnum}
}

// ParseVariant maps a name such as "lazy-enum" to its Variant.
func ParseVariant(name string) (Variant, error) {
	v := Variant(name)
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Func returns the evaluator for v. It panics on a Variant not obtained from
// ParseVariant or the constants.
func (v Variant) Func() Func {
	return v.mustFuncs().eval
}

// Evaluate runs v as a fresh top-level call and returns its statistics.
func (v Variant) Evaluate(x, y, z int) (int, Stats) {
	return v.mustFuncs().stats(x, y, z)
}

func (v Variant) String() string {
	return string(v)
}

func (v Variant) mustFuncs() variantFuncs {
	f, ok := variants[v]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownVariant, string(v)))
	}
	return f
}
