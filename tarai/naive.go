package tarai

type naive struct {
	Stats
}

func (n *naive) t(x, y, z int) int {
	n.Calls++
	if x <= y {
		return y
	}
	return n.t(
		n.t(x-1, y, z),
		n.t(y-1, z, x),
		n.t(z-1, x, y),
	)
}

// Naive evaluates tarai by direct recursion. Every sub-call is evaluated eagerly.
func Naive(x, y, z int) int {
	var n naive
	return n.t(x, y, z)
}

// NaiveStats is Naive plus the call statistics of the evaluation.
func NaiveStats(x, y, z int) (int, Stats) {
	var n naive
	v := n.t(x, y, z)
	return v, n.Stats
}
