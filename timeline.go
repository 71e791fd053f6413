package famfolio

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Timeline stores a chronological series of decimal values, one per date.
// Dates are unique and the series is always sorted, which makes the
// cumulative-sum and forward-fill passes of the reconstructor a single scan.
type Timeline struct {
	days   []Date
	values []decimal.Decimal
}

// Len returns the number of points in the timeline.
func (t *Timeline) Len() int { return len(t.days) }

// Set records a value for a date, replacing any existing point.
func (t *Timeline) Set(on Date, v decimal.Decimal) {
	i, found := t.search(on)
	if found {
		t.values[i] = v
		return
	}
	t.days = slices.Insert(t.days, i, on)
	t.values = slices.Insert(t.values, i, v)
}

// AddAt accumulates a value into the point for a date, creating it at zero
// first if needed. Several same-day ledger rows collapse into one delta.
func (t *Timeline) AddAt(on Date, v decimal.Decimal) {
	i, found := t.search(on)
	if found {
		t.values[i] = t.values[i].Add(v)
		return
	}
	t.days = slices.Insert(t.days, i, on)
	t.values = slices.Insert(t.values, i, v)
}

// Get returns the value at exactly 'on', or zero and false.
func (t *Timeline) Get(on Date) (decimal.Decimal, bool) {
	i, found := t.search(on)
	if !found {
		return decimal.Zero, false
	}
	return t.values[i], true
}

// ValueAsOf returns the value on 'on' or the most recent value before it.
// It returns zero and false when there is no point on or before the date.
func (t *Timeline) ValueAsOf(on Date) (decimal.Decimal, bool) {
	i, found := t.search(on)
	if found {
		return t.values[i], true
	}
	if i == 0 {
		return decimal.Zero, false
	}
	return t.values[i-1], true
}

// Latest returns the last point of the timeline, or zero values when empty.
func (t *Timeline) Latest() (Date, decimal.Decimal) {
	if len(t.days) == 0 {
		return Date{}, decimal.Zero
	}
	return t.days[len(t.days)-1], t.values[len(t.days)-1]
}

// All iterates the points in chronological order.
func (t *Timeline) All() iter.Seq2[Date, decimal.Decimal] {
	return func(yield func(Date, decimal.Decimal) bool) {
		for i, on := range t.days {
			if !yield(on, t.values[i]) {
				return
			}
		}
	}
}

// CumSum reindexes the timeline to every calendar day in [from, to] and
// returns the running sum: days without a point contribute zero. This turns
// a per-day delta series into a cumulative series.
func (t *Timeline) CumSum(from, to Date) []decimal.Decimal {
	var out []decimal.Decimal
	sum := decimal.Zero
	for on := range Days(from, to) {
		if v, ok := t.Get(on); ok {
			sum = sum.Add(v)
		}
		out = append(out, sum)
	}
	return out
}

// ForwardFill reindexes the timeline to every calendar day in [from, to],
// carrying the last known value across gaps (weekends, holidays). Days
// before the first point are zero.
func (t *Timeline) ForwardFill(from, to Date) []decimal.Decimal {
	var out []decimal.Decimal
	last := decimal.Zero
	for on := range Days(from, to) {
		if v, ok := t.Get(on); ok {
			last = v
		}
		out = append(out, last)
	}
	return out
}

// search locates a date with binary search, returning its index and whether
// it is present. When absent the index is the insertion point.
func (t *Timeline) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(t.days, on, func(d, target Date) int {
		switch {
		case d.Before(target):
			return -1
		case d.After(target):
			return 1
		default:
			return 0
		}
	})
}
