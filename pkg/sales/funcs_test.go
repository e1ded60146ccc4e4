package sales

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	got := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	got := Filter([]int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := Reduce([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 10, sum)

	// Seed is returned untouched for empty input.
	assert.Equal(t, 7, Reduce(nil, 7, func(acc, v int) int { return acc + v }))
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	words := []string{"ant", "bee", "ape", "bat", "cow"}
	grouped := GroupBy(words, func(w string) byte { return w[0] })

	assert.Equal(t, []string{"ant", "ape"}, grouped['a'])
	assert.Equal(t, []string{"bee", "bat"}, grouped['b'])
	assert.Equal(t, []string{"cow"}, grouped['c'])
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"},
		{-1234.5, "-$1,234.50"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatCurrency(c.in), "FormatCurrency(%v)", c.in)
	}
}
