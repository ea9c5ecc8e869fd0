// Package facts serves the one-liner astronomy facts shown next to the
// gallery.
package facts

import (
	"math/rand"
	"time"
)

// The fact list is fixed at build time. Picking never fails because the
// list is non-empty by construction.
var defaultFacts = []string{
	"One million Earths could fit inside the Sun.",
	"A day on Venus is longer than a year on Venus.",
	"Neutron stars can spin at a rate of 600 rotations per second.",
	"There are more trees on Earth than stars in the Milky Way.",
	"The footprints on the Moon will be there for millions of years.",
	"Jupiter's Great Red Spot is a storm that has raged for over 300 years.",
	"Light from the Sun takes about eight minutes to reach Earth.",
	"Saturn would float if you could find a bathtub big enough.",
	"The observable universe is about 93 billion light-years across.",
	"Olympus Mons on Mars is nearly three times the height of Everest.",
	"A spoonful of neutron star material would weigh about a billion tonnes.",
	"The Sun accounts for 99.86 percent of the mass in the solar system.",
}

// Picker selects facts uniformly at random from the fixed list.
type Picker struct {
	rand  *rand.Rand
	facts []string
}

func New() *Picker {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a picker with a deterministic sequence, used in tests.
func NewWithSeed(seed int64) *Picker {
	return &Picker{
		rand:  rand.New(rand.NewSource(seed)),
		facts: defaultFacts,
	}
}

// Pick returns one fact with equal probability 1/N.
func (p *Picker) Pick() string {
	return p.facts[p.rand.Intn(len(p.facts))]
}

// Facts returns a copy of the fixed fact list.
func (p *Picker) Facts() []string {
	facts := make([]string, len(p.facts))
	copy(facts, p.facts)
	return facts
}
