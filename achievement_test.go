package liferestart

import (
	"testing"

	"github.com/lox/liferestart/catalog"
	"github.com/lox/liferestart/condition"
)

func TestCheckAchievementsSkipsWrongOpportunity(t *testing.T) {
	cat := catalog.New(nil, nil, nil, map[int]catalog.AchievementConfig{
		1: {ID: 1, Name: "Summary only", Opportunity: catalog.OpportunitySummary},
	}, nil)
	state := newTestState()

	got, err := checkAchievements(catalog.OpportunityStart, state, map[int]bool{}, cat, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no match at the wrong opportunity, got %v", got)
	}
}

func TestCheckAchievementsSkipsAlreadyAchieved(t *testing.T) {
	cat := catalog.New(nil, nil, nil, map[int]catalog.AchievementConfig{
		1: {ID: 1, Name: "Born", Opportunity: catalog.OpportunityStart},
	}, nil)
	state := newTestState()

	got, err := checkAchievements(catalog.OpportunityStart, state, map[int]bool{1: true}, cat, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no re-award of an already-achieved id, got %v", got)
	}
}

func TestCheckAchievementsMarksAchievedOnMatch(t *testing.T) {
	cat := catalog.New(nil, nil, nil, map[int]catalog.AchievementConfig{
		1: {ID: 1, Name: "Wealthy", Opportunity: catalog.OpportunityTrajectory, Condition: "MNY>=0"},
	}, nil)
	state := newTestState()
	achieved := map[int]bool{}

	got, err := checkAchievements(catalog.OpportunityTrajectory, state, achieved, cat, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected achievement 1 to match, got %v", got)
	}
	if !achieved[1] {
		t.Fatalf("expected achieved set to be updated in place")
	}

	gotAgain, err := checkAchievements(catalog.OpportunityTrajectory, state, achieved, cat, condition.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotAgain) != 0 {
		t.Fatalf("expected no re-award within the same achieved set, got %v", gotAgain)
	}
}

func TestCheckAchievementsInvalidConditionErrors(t *testing.T) {
	cat := catalog.New(nil, nil, nil, map[int]catalog.AchievementConfig{
		1: {ID: 1, Name: "Broken", Opportunity: catalog.OpportunityStart, Condition: "CHR>>5"},
	}, nil)
	state := newTestState()

	_, err := checkAchievements(catalog.OpportunityStart, state, map[int]bool{}, cat, condition.NewCache())
	if err == nil {
		t.Fatalf("expected a parse error to propagate")
	}
}
