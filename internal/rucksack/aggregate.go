package rucksack

// Lookup is the outcome of searching one group for its common item.
type Lookup struct {
	Start int
	Item  Item
	Found bool
}

// Aggregator keeps the running total of item priorities.
// The zero value starts at 0.
type Aggregator struct {
	total int
}

// Add folds one lookup into the total. Missing items add nothing.
func (a *Aggregator) Add(l Lookup) {
	if !l.Found {
		return
	}
	a.total += l.Item.Priority()
}

// Total returns the current sum.
func (a *Aggregator) Total() int {
	return a.total
}

// Aggregate sums the priorities of every found item.
func Aggregate(lookups []Lookup) int {
	var agg Aggregator
	for _, l := range lookups {
		agg.Add(l)
	}
	return agg.Total()
}
