package liferestart

import (
	"fmt"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
	"github.com/lox/liferestart/property"
)

// checkAchievements sweeps the achievement catalogue for one opportunity
// point, skipping achievements tagged for a different opportunity or
// already present in achieved. Every match is recorded into achieved so it
// is never re-awarded at a later opportunity within the same run.
// Iteration order over the catalogue map is unspecified by design.
func checkAchievements(opportunity catalog.Opportunity, state *property.State, achieved map[int]bool, cat *catalog.Catalog, cache *condition.Cache) ([]AchievementInfo, error) {
	var out []AchievementInfo
	for id, ach := range cat.Achievements {
		if ach.Opportunity != opportunity || achieved[id] {
			continue
		}
		matched, err := cache.CheckCondition(ach.Condition, state)
		if err != nil {
			return out, wrapConditionErr(fmt.Sprintf("achievement %d condition", id), err)
		}
		if !matched {
			continue
		}
		achieved[id] = true
		out = append(out, AchievementInfo{
			ID:          ach.ID,
			Name:        ach.Name,
			Description: ach.Description,
			Grade:       ach.Grade,
		})
	}
	return out, nil
}
