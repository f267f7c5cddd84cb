// Package tarai computes the Tarai (Takeuchi) function with four evaluation
// strategies over the same recursive definition:
//
//	tarai(x, y, z) = y                                            if x <= y
//	tarai(x, y, z) = tarai(tarai(x-1, y, z),
//	                       tarai(y-1, z, x),
//	                       tarai(z-1, x, y))                      otherwise
//
// The strategies are:
//   - Naive: direct eager recursion. The baseline for correctness and call count.
//   - Memo: eager recursion with a per-call memo table keyed by the argument triple.
//   - LazyClosure: call-by-need, the third argument passed as a func() int.
//   - LazyEnum: call-by-need, the third argument passed as a tagged thunk value.
//
// Every function is pure. Any auxiliary state (memo table, thunks) is owned by a
// single top-level call and dropped when it returns, so calls may run from any
// number of goroutines.
//
// Arithmetic is plain int. Inputs near the ends of the int range can wrap on
// x-1, y-1 or z-1; this is not detected. Recursion is native, so adversarial
// inputs to Naive and Memo can exhaust the stack.
//
// The *Stats twins return call statistics alongside the result, which makes the
// difference between the strategies observable:
//
//	v, st := tarai.LazyEnumStats(12, 6, 0)
//	fmt.Println(v, st.Calls, st.Forces)
package tarai
