package models

import (
	"math"
	"strconv"
)

// PrizeKey formats a prize amount as its currency label.
// Whole amounts have no decimals ("$500"), others exactly two ("$12.50").
func PrizeKey(amount float64) string {
	if amount == math.Trunc(amount) {
		return "$" + strconv.FormatFloat(amount, 'f', 0, 64)
	}
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// PrizeCounts counts prize occurrences by label, keeping first-seen key order.
// The zero value is ready to use.
type PrizeCounts struct {
	keys   []string
	counts map[string]int
}

// Add increments the count for key.
func (p *PrizeCounts) Add(key string) {
	if p.counts == nil {
		p.counts = make(map[string]int)
	}
	if _, ok := p.counts[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.counts[key]++
}

// Get returns the count for key.
func (p PrizeCounts) Get(key string) int {
	return p.counts[key]
}

// Keys returns the labels in first-seen order.
func (p PrizeCounts) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of distinct labels.
func (p PrizeCounts) Len() int {
	return len(p.keys)
}

// Total returns the sum of all counts.
func (p PrizeCounts) Total() int {
	total := 0
	for _, n := range p.counts {
		total += n
	}
	return total
}

// Equal reports whether both hold the same labels, counts and order.
func (p PrizeCounts) Equal(other PrizeCounts) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, k := range p.keys {
		if other.keys[i] != k || other.counts[k] != p.counts[k] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the counts as an object in first-seen key order.
func (p PrizeCounts) MarshalJSON() ([]byte, error) {
	fields := make([]objectField, 0, len(p.keys))
	for _, k := range p.keys {
		fields = append(fields, objectField{key: k, value: p.counts[k]})
	}
	return marshalObject(fields)
}
