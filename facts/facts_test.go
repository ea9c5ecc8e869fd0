package facts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skylight/facts"
)

func TestPickReturnsOnlyKnownFacts(t *testing.T) {
	picker := facts.NewWithSeed(1)
	known := make(map[string]bool)
	for _, fact := range picker.Facts() {
		known[fact] = true
	}

	for i := 0; i < 1000; i++ {
		assert.True(t, known[picker.Pick()])
	}
}

func TestPickIsRoughlyUniform(t *testing.T) {
	picker := facts.NewWithSeed(42)
	n := len(picker.Facts())
	counts := make(map[string]int)

	const draws = 1000
	for i := 0; i < draws; i++ {
		counts[picker.Pick()]++
	}

	// Every fact should show up, and none should dominate. With 1000 draws
	// over a dozen facts the expected count is ~83, so these bounds are
	// generous.
	assert.Len(t, counts, n)
	expected := draws / n
	for fact, count := range counts {
		assert.Greater(t, count, expected/3, "fact drawn too rarely: %s", fact)
		assert.Less(t, count, expected*3, "fact drawn too often: %s", fact)
	}
}

func TestFactsReturnsACopy(t *testing.T) {
	picker := facts.NewWithSeed(1)
	list := picker.Facts()
	list[0] = "mutated"

	assert.NotEqual(t, "mutated", picker.Facts()[0])
}
