package liferestart

import (
	"math/rand/v2"
	"testing"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
	"github.com/lox/liferestart/property"
)

func newTestState() *property.State {
	return property.New(rand.New(rand.NewPCG(1, 2)), 5, 5, 5, 5, 5, 1)
}

func TestTriggerTalentsRespectsMaxTriggers(t *testing.T) {
	state := newTestState()
	state.Change(property.Tlt, 1)
	cat := catalog.New(map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Once", MaxTriggers: 1, Effect: catalog.Effect{
			{Kind: catalog.EffectScalar, Property: property.Chr, Delta: 1},
		}},
	}, nil, nil, nil, nil)
	counts := map[int]int{}
	cache := condition.NewCache()

	if _, err := triggerTalents(state, cat, counts, cache); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := triggerTalents(state, cat, counts, cache); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts[1] != 1 {
		t.Fatalf("expected talent 1 to have triggered exactly once, got %d", counts[1])
	}
	if state.Chr != 6 {
		t.Fatalf("expected CHR to have changed exactly once (6), got %d", state.Chr)
	}
}

func TestTriggerTalentsSkipsUnmetCondition(t *testing.T) {
	state := newTestState()
	state.Change(property.Tlt, 1)
	cat := catalog.New(map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Needs wealth", MaxTriggers: 1, Condition: "MNY>100"},
	}, nil, nil, nil, nil)

	content, err := triggerTalents(state, cat, map[int]int{}, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) != 0 {
		t.Fatalf("expected no content for an unmet condition, got %v", content)
	}
}

func TestTriggerTalentsAppliesLaterEffectsWithinSamePass(t *testing.T) {
	state := newTestState()
	state.Change(property.Tlt, 1)
	state.Change(property.Tlt, 2)
	cat := catalog.New(map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Raise CHR", MaxTriggers: 1, Effect: catalog.Effect{
			{Kind: catalog.EffectScalar, Property: property.Chr, Delta: 10},
		}},
		2: {ID: 2, Name: "Needs raised CHR", MaxTriggers: 1, Condition: "CHR>=15"},
	}, nil, nil, nil, nil)

	content, err := triggerTalents(state, cat, map[int]int{}, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) != 2 {
		t.Fatalf("expected talent 2 to observe talent 1's effect within the same pass, got %d entries", len(content))
	}
}

func TestCheckExclusionCandidateExcludesPresent(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1, Exclude: []int{2}},
		2: {ID: 2},
	}
	if id, ok := checkExclusion(talents, []int{2}, 1); !ok || id != 2 {
		t.Fatalf("expected exclusion against present id 2, got id=%d ok=%v", id, ok)
	}
}

func TestCheckExclusionPresentExcludesCandidate(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1},
		2: {ID: 2, Exclude: []int{1}},
	}
	if id, ok := checkExclusion(talents, []int{2}, 1); !ok || id != 2 {
		t.Fatalf("expected exclusion via present talent's exclude list, got id=%d ok=%v", id, ok)
	}
}

func TestCheckExclusionNoConflict(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1},
		2: {ID: 2},
	}
	if _, ok := checkExclusion(talents, []int{2}, 1); ok {
		t.Fatalf("expected no exclusion between unrelated talents")
	}
}

func TestExpandReplacementsByTalentID(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Source", Replacement: &catalog.TalentReplacement{
			Talent: map[int]float64{2: 1.0},
		}},
		2: {ID: 2, Name: "Target"},
	}
	cat := catalog.New(talents, nil, nil, nil, nil)
	rng := rand.New(rand.NewPCG(1, 2))

	final, replacements := expandReplacements([]int{1}, cat, rng, defaultReplacementDepth)
	if len(final) != 1 || final[0] != 2 {
		t.Fatalf("expected talent 1 to be replaced by 2, got %v", final)
	}
	if len(replacements) != 1 || replacements[0].SourceID != 1 || replacements[0].TargetID != 2 {
		t.Fatalf("expected one replacement record 1->2, got %v", replacements)
	}
}

func TestExpandReplacementsHonorsExclusion(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Source", Replacement: &catalog.TalentReplacement{
			Talent: map[int]float64{2: 1.0},
		}},
		2: {ID: 2, Name: "Excluded by 3"},
		3: {ID: 3, Name: "Blocker", Exclude: []int{2}},
	}
	cat := catalog.New(talents, nil, nil, nil, nil)
	rng := rand.New(rand.NewPCG(1, 2))

	final, replacements := expandReplacements([]int{1, 3}, cat, rng, defaultReplacementDepth)
	if final[0] != 1 {
		t.Fatalf("expected talent 1 to remain unreplaced once its only candidate is excluded, got %v", final)
	}
	if len(replacements) != 0 {
		t.Fatalf("expected no replacement records, got %v", replacements)
	}
}

func TestExpandReplacementsNoReplacementPassesThrough(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1, Name: "Plain"},
	}
	cat := catalog.New(talents, nil, nil, nil, nil)
	rng := rand.New(rand.NewPCG(1, 2))

	final, replacements := expandReplacements([]int{1}, cat, rng, defaultReplacementDepth)
	if len(final) != 1 || final[0] != 1 {
		t.Fatalf("expected talent with no replacement pool to pass through unchanged, got %v", final)
	}
	if len(replacements) != 0 {
		t.Fatalf("expected no replacement records, got %v", replacements)
	}
}

func TestReplaceTalentStopsAtZeroDepth(t *testing.T) {
	talents := map[int]catalog.TalentConfig{
		1: {ID: 1, Replacement: &catalog.TalentReplacement{Talent: map[int]float64{2: 1.0}}},
	}
	cat := catalog.New(talents, nil, nil, nil, nil)
	rng := rand.New(rand.NewPCG(1, 2))

	if got := replaceTalent(1, nil, cat, rng, 0); got != 1 {
		t.Fatalf("expected depth 0 to return the input id unchanged, got %d", got)
	}
}
