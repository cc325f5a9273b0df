package rucksack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	lookups := []Lookup{
		{Start: 0, Item: 'r', Found: true},
		{Start: 3, Found: false},
		{Start: 6, Item: 'Z', Found: true},
	}

	assert.Equal(t, 18+52, Aggregate(lookups))
	assert.Equal(t, Aggregate(lookups), Aggregate(lookups), "aggregate is a pure fold")
	assert.Equal(t, 0, Aggregate(nil))
}

func TestAggregatorIgnoresMissingItems(t *testing.T) {
	var agg Aggregator
	agg.Add(Lookup{Item: 'z', Found: false})
	assert.Equal(t, 0, agg.Total())

	agg.Add(Lookup{Item: 'a', Found: true})
	agg.Add(Lookup{Item: '1', Found: true})
	assert.Equal(t, 1, agg.Total())
}
