package tarai

type thunkState uint8

const (
	thunkPending thunkState = iota
	thunkResolved
)

// thunk is the deferred third argument. A pending thunk holds the arguments of
// tarai(x, y, z); a resolved thunk holds the result. pending -> resolved happens
// once, on the first force.
type thunk struct {
	state   thunkState
	x, y, z int
	value   int
}

func pending(x, y, z int) thunk {
	return thunk{state: thunkPending, x: x, y: y, z: z}
}

func resolved(v int) thunk {
	return thunk{state: thunkResolved, value: v}
}

type lazyEnum struct {
	Stats
}

func (l *lazyEnum) force(th *thunk) int {
	l.Forces++
	if th.state == thunkResolved {
		return th.value
	}
	th.value = l.t(th.x, th.y, resolved(th.z))
	th.state = thunkResolved
	return th.value
}

func (l *lazyEnum) t(x, y int, z thunk) int {
	l.Calls++
	if x <= y {
		return y
	}
	zv := l.force(&z)
	a := l.t(x-1, y, resolved(zv))
	b := l.t(y-1, zv, resolved(x))
	return l.t(a, b, pending(zv-1, x, y))
}

// LazyEnum evaluates tarai call-by-need, passing the third argument as a
// tagged value that is either pending arguments or a resolved result.
func LazyEnum(x, y, z int) int {
	var l lazyEnum
	return l.t(x, y, resolved(z))
}

// LazyEnumStats is LazyEnum plus the call statistics of the evaluation.
func LazyEnumStats(x, y, z int) (int, Stats) {
	var l lazyEnum
	v := l.t(x, y, resolved(z))
	return v, l.Stats
}
