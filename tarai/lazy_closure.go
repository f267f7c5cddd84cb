package tarai

type lazyClosure struct {
	Stats
}

// t never calls z when x <= y. Otherwise z is called once on entry and the
// third argument of the combining call is passed on unevaluated.
func (l *lazyClosure) t(x, y int, z func() int) int {
	l.Calls++
	if x <= y {
		return y
	}
	l.Forces++
	zv := z()
	a := l.t(x-1, y, func() int { return zv })
	b := l.t(y-1, zv, func() int { return x })
	c := func() int {
		return l.t(zv-1, x, func() int { return y })
	}
	return l.t(a, b, c)
}

// LazyClosure evaluates tarai call-by-need, passing the third argument as a
// closure.
func LazyClosure(x, y, z int) int {
	var l lazyClosure
	return l.t(x, y, func() int { return z })
}

// LazyClosureStats is LazyClosure plus the call statistics of the evaluation.
func LazyClosureStats(x, y, z int) (int, Stats) {
	var l lazyClosure
	v := l.t(x, y, func() int { return z })
	return v, l.Stats
}
