package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	input := map[int]float64{3: 1, 1: 2, 2: 3}
	assert.Equal(t, []int{1, 2, 3}, SortedKeys(input))
	assert.Empty(t, SortedKeys(map[int]float64{}))
}

func TestUniquesKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []int{4, 1, 2}, Uniques([]int{4, 1, 4, 2, 1}))
}

func TestFilterAndMap(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
	assert.Equal(t, []int{4, 8}, Map(evens, func(i int) int { return i * 2 }))
	assert.True(t, Contains(evens, 4))
	assert.False(t, Contains(evens, 3))
}
