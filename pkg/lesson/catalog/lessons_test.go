package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Spot checks for lesson helpers whose behavior is easy to get subtly wrong.

func TestAdd(t *testing.T) {
	assert.Equal(t, 3, add(1, 2))
	assert.Equal(t, 0, add(-1, 1))
}

func TestToFahrenheit(t *testing.T) {
	assert.Equal(t, fahrenheit(212), toFahrenheit(celsius(100)))
	assert.Equal(t, fahrenheit(32), toFahrenheit(celsius(0)))
}

func TestDivmod(t *testing.T) {
	q, r := divmod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)
}

func TestRectangle(t *testing.T) {
	area, perimeter := rectangle(3, 4)
	assert.Equal(t, 12, area)
	assert.Equal(t, 14, perimeter)
}

func TestRemoveAt(t *testing.T) {
	assert.Equal(t, []int{10, 30}, removeAt([]int{10, 20, 30}, 1))
	assert.Equal(t, []int{20, 30}, removeAt([]int{10, 20, 30}, 0))
}

func TestWordCount(t *testing.T) {
	counts := wordCount("the quick the lazy the")
	assert.Equal(t, 3, counts["the"])
	assert.Equal(t, 1, counts["quick"])
	assert.NotContains(t, counts, "")
}

func TestDayKind(t *testing.T) {
	assert.Equal(t, "weekend", dayKind(7))
	assert.Equal(t, "weekday", dayKind(3))
	assert.Equal(t, "mystery", dayKind(0))
}

func TestReverseRunes(t *testing.T) {
	assert.Equal(t, "olléh", reverseRunes("héllo"))
	assert.Equal(t, "", reverseRunes(""))
}

func TestAudited(t *testing.T) {
	assert.Equal(t, 8, audited(4))
	// The deferred closure caps the named result.
	assert.Equal(t, 10, audited(6))
}

func TestSafely(t *testing.T) {
	assert.Error(t, safely(func() { panic("x") }))
	assert.NoError(t, safely(func() {}))
}

func TestMaxOf(t *testing.T) {
	assert.Equal(t, 7, maxOf(3, 7))
	assert.Equal(t, "bee", maxOf("ant", "bee"))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, manhattan(point{}, point{X: 3, Y: 4}))
	assert.Equal(t, 0, manhattan(point{X: 1, Y: 1}, point{X: 1, Y: 1}))
}
