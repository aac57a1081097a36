package modecounter

import (
	"sort"
)

// ValueCount amount of times Value was seen
type ValueCount[T comparable] struct {
	Value T
	Count int
}

// ModeCounter struct that counts how many times each value appears in a column
// + counters: amount of rows per value
// + order: values in the order they were first seen. Ties are broken with it, so the result is
// deterministic for a given input
// + total: amount of values counted
type ModeCounter[T comparable] struct {
	counters map[T]int
	order    []T
	total    int
}

func NewModeCounter[T comparable]() *ModeCounter[T] {
	return &ModeCounter[T]{
		counters: make(map[T]int),
	}
}

// UpdateCounter adds one occurrence of value
func (mc *ModeCounter[T]) UpdateCounter(value T) {
	if _, ok := mc.counters[value]; !ok {
		mc.order = append(mc.order, value)
	}
	mc.counters[value] += 1
	mc.total += 1
}

// GetTotal returns the amount of values counted
func (mc *ModeCounter[T]) GetTotal() int {
	return mc.total
}

// GetMode returns the most frequent value. On ties the value seen first wins.
// ok is false when nothing was counted.
func (mc *ModeCounter[T]) GetMode() (mode T, count int, ok bool) {
	for _, value := range mc.order {
		if mc.counters[value] > count {
			mode = value
			count = mc.counters[value]
			ok = true
		}
	}
	return mode, count, ok
}

// GetCounts returns every value with its count, most frequent first. Equal counts keep first-seen order.
func (mc *ModeCounter[T]) GetCounts() []ValueCount[T] {
	counts := make([]ValueCount[T], 0, len(mc.order))
	for _, value := range mc.order {
		counts = append(counts, ValueCount[T]{Value: value, Count: mc.counters[value]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
