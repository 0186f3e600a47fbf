// Package battery defines the five screening tests that make up a full
// assessment battery: their identifiers, clinical domains, composite
// weights, and administration order.
package battery

// TestID identifies one screening test within the battery.
type TestID string

const (
	TestMemory  TestID = "memory-recall"
	TestFluency TestID = "verbal-fluency"
	TestTrails  TestID = "trail-making"
	TestStroop  TestID = "color-word"
	TestPicture TestID = "picture-description"
)

// Domain is the clinical domain a test primarily probes.
type Domain string

const (
	DomainMemory    Domain = "memory"
	DomainLanguage  Domain = "language"
	DomainExecutive Domain = "executive"
	DomainAttention Domain = "attention"
)

// Definition describes one test in the battery.
type Definition struct {
	ID     TestID
	Name   string
	Domain Domain
	// Weight is this test's contribution to the composite score.
	// Weights across the full battery sum to 1.0 and are never
	// renormalized for partial batteries.
	Weight float64
}

// order is the canonical administration order of the battery.
var order = []Definition{
	{ID: TestMemory, Name: "Memory Recall", Domain: DomainMemory, Weight: 0.35},
	{ID: TestFluency, Name: "Verbal Fluency", Domain: DomainLanguage, Weight: 0.15},
	{ID: TestTrails, Name: "Trail Making", Domain: DomainExecutive, Weight: 0.20},
	{ID: TestStroop, Name: "Color-Word Interference", Domain: DomainAttention, Weight: 0.20},
	{ID: TestPicture, Name: "Picture Description", Domain: DomainLanguage, Weight: 0.10},
}

// byID indexes definitions for lookup.
var byID map[TestID]Definition

func init() {
	byID = make(map[TestID]Definition, len(order))
	for _, d := range order {
		byID[d.ID] = d
	}
}

// All returns the battery's tests in administration order.
// The returned slice is a copy; callers may not mutate the registry.
func All() []Definition {
	out := make([]Definition, len(order))
	copy(out, order)
	return out
}

// Get returns the definition for id. The second return is false if the
// id is not part of the battery.
func Get(id TestID) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// Weight returns the composite weight for id, or 0 for unknown ids so
// that stray scores contribute nothing rather than corrupting the CCS.
func Weight(id TestID) float64 {
	return byID[id].Weight
}
