package liferestart

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
	"github.com/lox/liferestart/property"
)

// triggerTalents runs one trigger pass over state.Tlt in insertion order:
// skip a talent whose trigger count has hit its max, skip one whose
// condition evaluates false, otherwise increment its count and apply its
// effect immediately so later talents in the same pass observe the delta.
func triggerTalents(state *property.State, cat *catalog.Catalog, counts map[int]int, cache *condition.Cache) ([]YearContent, error) {
	var content []YearContent
	for _, id := range state.Tlt {
		talent, ok := cat.Talents[id]
		if !ok {
			continue
		}
		if counts[id] >= talent.MaxTriggers {
			continue
		}
		ok, err := cache.CheckCondition(talent.Condition, state)
		if err != nil {
			return content, wrapConditionErr(fmt.Sprintf("talent %d condition", id), err)
		}
		if !ok {
			continue
		}

		counts[id]++
		content = append(content, YearContent{
			Kind:        ContentTalent,
			Description: talent.Description,
			Grade:       talent.Grade,
			Name:        talent.Name,
		})
		talent.Effect.Apply(state)
	}
	return content, nil
}

// checkExclusion reports whether candidateID conflicts with any id in
// present, scanning in present's order: a conflict exists if the
// candidate's exclude list names a present id, or a present talent's
// exclude list names the candidate. The first conflicting id found (in
// present's scan order) is returned.
func checkExclusion(talents map[int]catalog.TalentConfig, present []int, candidateID int) (int, bool) {
	candidate, ok := talents[candidateID]
	if !ok {
		return 0, false
	}
	for _, id := range present {
		if candidate.Excludes(id) {
			return id, true
		}
		if other, ok := talents[id]; ok && other.Excludes(candidateID) {
			return id, true
		}
	}
	return 0, false
}

// expandReplacements performs startup talent replacement: for each input
// talent id, repeatedly draws a weighted replacement (grade-based or
// explicit-id-based, filtered by exclusion against the growing accumulated
// set) up to maxDepth recursions, then prunes the accumulator back to the
// input length. Returns the final talent list (same length as input) and
// one ReplacementResult per id that actually changed, recorded only when
// both the source and the target talent exist in the catalogue.
func expandReplacements(talentIDs []int, cat *catalog.Catalog, rng *rand.Rand, maxDepth int) ([]int, []ReplacementResult) {
	working := append([]int(nil), talentIDs...)
	var replacements []ReplacementResult

	for i, id := range talentIDs {
		replaced := replaceTalent(id, working, cat, rng, maxDepth)
		if replaced != id {
			source, sOk := cat.Talents[id]
			target, tOk := cat.Talents[replaced]
			if sOk && tOk {
				replacements = append(replacements, ReplacementResult{
					SourceID: id, SourceName: source.Name,
					TargetID: replaced, TargetName: target.Name,
				})
			}
			working[i] = replaced
			working = append(working, replaced)
		}
	}

	return working[:len(talentIDs)], replacements
}

func replaceTalent(id int, existing []int, cat *catalog.Catalog, rng *rand.Rand, depth int) int {
	if depth <= 0 {
		return id
	}
	talent, ok := cat.Talents[id]
	if !ok || talent.Replacement == nil {
		return id
	}

	var candidates []weightedID
	if talent.Replacement.Grade != nil {
		for _, t := range cat.Talents {
			if t.Exclusive {
				continue
			}
			weight, ok := talent.Replacement.Grade[t.Grade]
			if !ok {
				continue
			}
			if _, excluded := checkExclusion(cat.Talents, existing, t.ID); excluded {
				continue
			}
			candidates = append(candidates, weightedID{id: t.ID, weight: weight})
		}
	}
	if talent.Replacement.Talent != nil {
		for tid, weight := range talent.Replacement.Talent {
			if _, excluded := checkExclusion(cat.Talents, existing, tid); excluded {
				continue
			}
			candidates = append(candidates, weightedID{id: tid, weight: weight})
		}
	}

	replaced, ok := weightedDraw(candidates, rng)
	if !ok {
		return id
	}

	nextExisting := append(append([]int(nil), existing...), replaced)
	return replaceTalent(replaced, nextExisting, cat, rng, depth-1)
}
