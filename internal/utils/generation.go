package util

// Generation hands out monotonically increasing tokens for one display
// surface. Only the result carrying the latest token may be applied.
// Not safe for concurrent use; callers hold their own lock.
type Generation struct {
	latest uint64
}

func (g *Generation) Next() uint64 {
	g.latest++
	return g.latest
}

func (g *Generation) IsCurrent(token uint64) bool {
	return token != 0 && token == g.latest
}
