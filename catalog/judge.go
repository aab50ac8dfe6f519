package catalog

import (
	"sort"

	"github.com/lox/liferestart/property"
)

// JudgeLevel is one threshold tier for grading a property's historical
// maximum: the first level (scanning highest Min first) whose Min is at
// or below the value wins.
type JudgeLevel struct {
	Min   int
	Grade int
	Text  string
}

// JudgeConfig maps a judged property to its levels, sorted by Min
// descending so the first matching level in iteration order is correct.
type JudgeConfig map[property.Property][]JudgeLevel

// sortLevels orders every level list by Min descending, so Select can
// return at the first level it reaches. Called once by New after loading.
func (j JudgeConfig) sortLevels() {
	for _, levels := range j {
		sort.Slice(levels, func(a, b int) bool { return levels[a].Min > levels[b].Min })
	}
}

// Select returns the first level whose Min is at or below value, and
// whether a judge list exists for prop at all.
func (j JudgeConfig) Select(prop property.Property, value int) (JudgeLevel, bool) {
	levels, ok := j[prop]
	if !ok {
		return JudgeLevel{}, false
	}
	for _, level := range levels {
		if level.Min <= value {
			return level, true
		}
	}
	return JudgeLevel{}, false
}
