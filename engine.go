// Package liferestart simulates one run of a "life restart" game: given a
// set of chosen talents and starting property allocations, it plays out a
// year-by-year trajectory driven by a data-supplied talent/event/
// achievement catalogue and returns the trajectory plus derived summary,
// unlocked achievements, and talent replacements performed.
package liferestart

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
	"github.com/lox/liferestart/internal/randutil"
	"github.com/lox/liferestart/property"
)

// Engine owns a read-only config catalogue shared across simulations; it
// carries no per-run mutable state of its own, so one Engine is safe to
// reuse concurrently across goroutines, each driving an independent
// simulation over its own PropertyState.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger

	conditions       *condition.Cache
	replacementDepth int
	chainDepth       int

	seedCounter atomic.Int64
}

// New builds an Engine from an already-constructed catalogue. Ingesting
// configuration from a host runtime is out of scope here — callers supply
// already-parsed catalogue maps (see catalog.Load for a reference fixture
// loader).
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:          cat,
		logger:           zerolog.Nop(),
		conditions:       condition.Global(),
		replacementDepth: defaultReplacementDepth,
		chainDepth:       defaultChainDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// nextSeed derives a fresh, effectively-unique seed per Simulate call: the
// random source is thread-local by design (spec §5), so concurrent
// simulations sharing one Engine must not share an RNG stream.
func (e *Engine) nextSeed() int64 {
	return time.Now().UnixNano() ^ e.seedCounter.Add(1)
}

// Simulate runs one complete life trajectory: seeds PropertyState from
// properties, expands talentIDs through startup replacement, fires initial
// talent effects, checks START achievements, then loops yearly (advance
// age, inject age-scoped talents, fire talents, draw+resolve one event,
// check TRAJECTORY achievements) until PropertyState.IsEnd(), and finally
// checks SUMMARY achievements and assembles the result.
//
// achieved is the caller's running achieved-id set across prior runs (e.g.
// a save file); it is read but never mutated — Simulate works on a private
// copy and reports this run's unlocks via NewAchievements, leaving the
// caller to merge them into their own persisted set.
func (e *Engine) Simulate(talentIDs []int, properties map[string]int, achieved map[int]bool) (*SimulationResult, error) {
	rng := randutil.New(e.nextSeed())

	finalTalents, replacements := expandReplacements(talentIDs, e.catalog, rng, e.replacementDepth)

	state := property.New(rng, properties["CHR"], properties["INT"], properties["STR"], properties["MNY"], 5, 1)
	for _, id := range finalTalents {
		state.Change(property.Tlt, id)
	}

	triggerCounts := make(map[int]int)
	achievedCopy := make(map[int]bool, len(achieved))
	for id := range achieved {
		achievedCopy[id] = true
	}

	if _, err := triggerTalents(state, e.catalog, triggerCounts, e.conditions); err != nil {
		return nil, err
	}

	var newAchievements []AchievementInfo
	startAchievements, err := checkAchievements(catalog.OpportunityStart, state, achievedCopy, e.catalog, e.conditions)
	if err != nil {
		return nil, err
	}
	newAchievements = append(newAchievements, startAchievements...)

	var trajectory []TrajectoryEntry
	for !state.IsEnd() {
		entry, err := e.simulateYear(state, triggerCounts)
		if err != nil {
			return nil, err
		}
		trajectory = append(trajectory, entry)

		trajAchievements, err := checkAchievements(catalog.OpportunityTrajectory, state, achievedCopy, e.catalog, e.conditions)
		if err != nil {
			return nil, err
		}
		newAchievements = append(newAchievements, trajAchievements...)

		if entry.IsEnd {
			break
		}
	}

	summaryAchievements, err := checkAchievements(catalog.OpportunitySummary, state, achievedCopy, e.catalog, e.conditions)
	if err != nil {
		return nil, err
	}
	newAchievements = append(newAchievements, summaryAchievements...)

	return &SimulationResult{
		Trajectory:      trajectory,
		Summary:         e.buildSummary(state, finalTalents),
		NewAchievements: newAchievements,
		TriggeredEvents: append([]int(nil), state.Evt...),
		Replacements:    replacements,
		TriggerCounts:   triggerCounts,
	}, nil
}

// simulateYear advances one tick: AGE+1, then either (age config present)
// inject talents + trigger pass + one event draw/chain, or (no age config)
// just a trigger pass so newly-opened conditions can fire.
func (e *Engine) simulateYear(state *property.State, triggerCounts map[int]int) (TrajectoryEntry, error) {
	state.Change(property.Age, 1)
	age := state.Age

	var content []YearContent

	if ageCfg, ok := e.catalog.Ages[age]; ok {
		for _, id := range ageCfg.Talents {
			state.Change(property.Tlt, id)
		}

		talentContent, err := triggerTalents(state, e.catalog, triggerCounts, e.conditions)
		if err != nil {
			return TrajectoryEntry{}, err
		}
		content = append(content, talentContent...)

		if eventID, ok, err := selectEvent(ageCfg.Events, e.catalog, state, e.conditions, state.RNG()); err != nil {
			return TrajectoryEntry{}, err
		} else if ok {
			chainContent, err := resolveEventChain(state, e.catalog, eventID, e.conditions, e.chainDepth)
			if err != nil {
				return TrajectoryEntry{}, err
			}
			content = append(content, chainContent...)
		} else {
			e.logger.Debug().Int("age", age).Msg("no event selected: empty or non-positive pool weight")
		}
	} else {
		talentContent, err := triggerTalents(state, e.catalog, triggerCounts, e.conditions)
		if err != nil {
			return TrajectoryEntry{}, err
		}
		content = append(content, talentContent...)
	}

	return TrajectoryEntry{
		Age:        age,
		Content:    content,
		IsEnd:      state.IsEnd(),
		Properties: state.Snapshot(),
	}, nil
}

// buildSummary grades each historical-maximum scalar and SUM against the
// catalogue's judge thresholds, and augments the final talent list with
// catalogue name/description/grade for presentation.
func (e *Engine) buildSummary(state *property.State, finalTalents []int) SummaryResult {
	var judges []PropertyJudge
	for _, prop := range summaryJudgeProperties {
		value := state.Lookup(prop).Int
		if level, ok := e.catalog.Judges.Select(prop, value); ok {
			judges = append(judges, PropertyJudge{
				Property: prop.String(),
				Value:    value,
				Grade:    level.Grade,
				Text:     level.Text,
				Progress: float64(clamp(value, 0, 10)) / 10,
			})
		}
	}

	var talents []TalentInfo
	for _, id := range finalTalents {
		t, ok := e.catalog.Talents[id]
		if !ok {
			continue
		}
		talents = append(talents, TalentInfo{ID: t.ID, Name: t.Name, Description: t.Description, Grade: t.Grade})
	}

	return SummaryResult{
		TotalScore: state.SummaryScore(),
		Judges:     judges,
		Talents:    talents,
	}
}

// summaryJudgeProperties are graded at the end of a run: each tracked
// scalar's historical maximum, plus the composite SUM score.
var summaryJudgeProperties = []property.Property{
	property.HChr, property.HInt, property.HStr, property.HMny, property.HSpr, property.HAge, property.Sum,
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
