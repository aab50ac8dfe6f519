package liferestart

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
	"github.com/lox/liferestart/property"
)

// weightedID pairs a catalogue id with its draw weight, shared by event
// selection and talent-replacement selection — both are the same
// single-pass weighted draw over a small candidate list.
type weightedID struct {
	id     int
	weight float64
}

// weightedDraw draws one id from items proportional to weight: accumulate
// total weight, draw r in [0, total), linearly scan subtracting weights,
// return the first id whose running subtotal drops to zero or below. The
// last item is the tie-breaking fallback for floating-point rounding.
func weightedDraw(items []weightedID, rng *rand.Rand) (int, bool) {
	var total float64
	for _, it := range items {
		total += it.weight
	}
	if len(items) == 0 || total <= 0 {
		return 0, false
	}

	r := rng.Float64() * total
	for _, it := range items {
		r -= it.weight
		if r <= 0 {
			return it.id, true
		}
	}
	return items[len(items)-1].id, true
}

// selectEvent filters pool down to eligible candidates (catalogue entry
// exists, not no_random, exclude predicate false, include predicate true)
// and draws one with weightedDraw. Returns false when no candidate
// survives filtering or the surviving weight is non-positive.
func selectEvent(pool []catalog.EventWeight, cat *catalog.Catalog, state *property.State, cache *condition.Cache, rng *rand.Rand) (int, bool, error) {
	var candidates []weightedID
	for _, ew := range pool {
		event, ok := cat.Events[ew.EventID]
		if !ok || event.NoRandom {
			continue
		}
		if event.Exclude != "" {
			excluded, err := cache.CheckCondition(event.Exclude, state)
			if err != nil {
				return 0, false, wrapConditionErr(fmt.Sprintf("event %d exclude", event.ID), err)
			}
			if excluded {
				continue
			}
		}
		if event.Include != "" {
			included, err := cache.CheckCondition(event.Include, state)
			if err != nil {
				return 0, false, wrapConditionErr(fmt.Sprintf("event %d include", event.ID), err)
			}
			if !included {
				continue
			}
		}
		candidates = append(candidates, weightedID{id: event.ID, weight: ew.Weight})
	}

	id, ok := weightedDraw(candidates, rng)
	return id, ok, nil
}

// resolveEventChain walks a chain of events starting at eventID: record
// each visited id into state.Evt, evaluate its branches in order (first
// match wins and suppresses post_event), apply its effect, and recurse
// into the matched branch's next event. depth bounds recursion; hitting it
// terminates the chain cleanly rather than erroring.
func resolveEventChain(state *property.State, cat *catalog.Catalog, eventID int, cache *condition.Cache, depth int) ([]YearContent, error) {
	var content []YearContent
	id := eventID

	for i := 0; i < depth; i++ {
		event, ok := cat.Events[id]
		if !ok {
			break
		}
		state.Change(property.Evt, id)

		nextID, matched, err := resolveBranch(event, state, cache)
		if err != nil {
			return content, err
		}

		description := event.Event
		if !matched {
			description += event.PostEvent
		}
		content = append(content, YearContent{
			Kind:        ContentEvent,
			Description: description,
			Grade:       event.Grade,
		})

		event.Effect.Apply(state)

		if !matched {
			break
		}
		id = nextID
	}

	return content, nil
}

func resolveBranch(event catalog.EventConfig, state *property.State, cache *condition.Cache) (int, bool, error) {
	for _, branch := range event.Branch {
		ok, err := cache.CheckCondition(branch.Condition, state)
		if err != nil {
			return 0, false, wrapConditionErr(fmt.Sprintf("event %d branch", event.ID), err)
		}
		if ok {
			return branch.EventID, true, nil
		}
	}
	return 0, false, nil
}
