package navmenu

import "time"

// Staggered pairs a value with the delay before its animation starts.
type Staggered[T any] struct {
	Value T
	Index int
	Delay time.Duration
}

// Stagger schedules items in declaration order: the first starts after base,
// each following one step later than its predecessor.
func Stagger[T any](items []T, base, step time.Duration) []Staggered[T] {
	out := make([]Staggered[T], len(items))
	for i, item := range items {
		out[i] = Staggered[T]{
			Value: item,
			Index: i,
			Delay: base + time.Duration(i)*step,
		}
	}
	return out
}
