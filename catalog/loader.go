package catalog

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/liferestart/property"
)

// document is the root HCL schema: a flat list of labeled blocks per
// catalogue, the same label-per-entry shape as the teacher's ServerConfig
// (table/bot blocks labeled by name; here, labeled by decimal id).
type document struct {
	Talents      []talentBlock      `hcl:"talent,block"`
	Events       []eventBlock       `hcl:"event,block"`
	Ages         []ageBlock         `hcl:"age,block"`
	Achievements []achievementBlock `hcl:"achievement,block"`
	Judges       []judgeBlock       `hcl:"judge,block"`
}

type talentBlock struct {
	ID          string             `hcl:"id,label"`
	Name        string             `hcl:"name"`
	Description string             `hcl:"description,optional"`
	Grade       int                `hcl:"grade,optional"`
	MaxTriggers int                `hcl:"max_triggers,optional"`
	Condition   string             `hcl:"condition,optional"`
	Exclusive   bool               `hcl:"exclusive,optional"`
	Exclude     []int              `hcl:"exclude,optional"`
	Effect      *EffectSpec        `hcl:"effect,block"`
	Replacement *replacementBlock  `hcl:"replacement,block"`
	Status      int                `hcl:"status,optional"`
}

type replacementBlock struct {
	Grade  map[string]float64 `hcl:"grade,optional"`
	Talent map[string]float64 `hcl:"talent,optional"`
}

type eventBlock struct {
	ID        string        `hcl:"id,label"`
	Event     string        `hcl:"event"`
	Grade     int           `hcl:"grade,optional"`
	NoRandom  bool          `hcl:"no_random,optional"`
	Include   string        `hcl:"include,optional"`
	Exclude   string        `hcl:"exclude,optional"`
	PostEvent string        `hcl:"post_event,optional"`
	Effect    *EffectSpec   `hcl:"effect,block"`
	Branches  []branchBlock `hcl:"branch,block"`
}

type branchBlock struct {
	Condition string `hcl:"condition"`
	EventID   int    `hcl:"event_id"`
}

type ageBlock struct {
	Age     string             `hcl:"age,label"`
	Talents []int              `hcl:"talents,optional"`
	Events  []eventWeightBlock `hcl:"event_weight,block"`
}

type eventWeightBlock struct {
	ID     int     `hcl:"id"`
	Weight float64 `hcl:"weight"`
}

type achievementBlock struct {
	ID          string `hcl:"id,label"`
	Name        string `hcl:"name"`
	Description string `hcl:"description,optional"`
	Grade       int    `hcl:"grade,optional"`
	Opportunity string `hcl:"opportunity"`
	Condition   string `hcl:"condition"`
}

type judgeBlock struct {
	Property string       `hcl:"property,label"`
	Levels   []levelBlock `hcl:"level,block"`
}

type levelBlock struct {
	Min   int    `hcl:"min"`
	Grade int    `hcl:"grade"`
	Text  string `hcl:"text"`
}

// Load reads an HCL catalogue document from path and compiles it into a
// Catalog. This is a fixture/demo convenience, not a host configuration
// layer: it reads one file once and returns; it does not watch, reload, or
// validate cross-catalogue referential integrity (a missing reference is
// the engine's problem to silently elide at consumption time, per spec).
func Load(path string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("catalog: parse %s: %s", path, diags.Error())
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("catalog: decode %s: %s", path, diags.Error())
	}

	talents, err := compileTalents(doc.Talents)
	if err != nil {
		return nil, err
	}
	events, err := compileEvents(doc.Events)
	if err != nil {
		return nil, err
	}
	ages, err := compileAges(doc.Ages)
	if err != nil {
		return nil, err
	}
	achievements, err := compileAchievements(doc.Achievements)
	if err != nil {
		return nil, err
	}
	judges, err := compileJudges(doc.Judges)
	if err != nil {
		return nil, err
	}

	return New(talents, events, ages, achievements, judges), nil
}

func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("catalog: invalid %s id %q: %w", kind, raw, err)
	}
	return id, nil
}

func compileTalents(blocks []talentBlock) (map[int]TalentConfig, error) {
	out := make(map[int]TalentConfig, len(blocks))
	for _, b := range blocks {
		id, err := parseID("talent", b.ID)
		if err != nil {
			return nil, err
		}
		var repl *TalentReplacement
		if b.Replacement != nil {
			repl = &TalentReplacement{
				Grade:  stringKeyedInts(b.Replacement.Grade),
				Talent: stringKeyedInts(b.Replacement.Talent),
			}
		}
		out[id] = TalentConfig{
			ID:          id,
			Name:        b.Name,
			Description: b.Description,
			Grade:       b.Grade,
			MaxTriggers: b.MaxTriggers,
			Condition:   b.Condition,
			Effect:      b.Effect.Compile(),
			Exclusive:   b.Exclusive,
			Exclude:     b.Exclude,
			Replacement: repl,
			Status:      b.Status,
		}
	}
	return out, nil
}

// stringKeyedInts converts a string-keyed weight map (HCL object keys are
// always strings) into an int-keyed one, dropping keys that don't parse as
// decimal integers (mirrors the original's "only explicit numeric keys are
// eligible" replacement-by-talent semantics).
func stringKeyedInts(in map[string]float64) map[int]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[int]float64, len(in))
	for k, v := range in {
		if n, err := strconv.Atoi(k); err == nil {
			out[n] = v
		}
	}
	return out
}

func compileEvents(blocks []eventBlock) (map[int]EventConfig, error) {
	out := make(map[int]EventConfig, len(blocks))
	for _, b := range blocks {
		id, err := parseID("event", b.ID)
		if err != nil {
			return nil, err
		}
		var branches []EventBranch
		for _, br := range b.Branches {
			branches = append(branches, EventBranch{Condition: br.Condition, EventID: br.EventID})
		}
		out[id] = EventConfig{
			ID:        id,
			Event:     b.Event,
			Grade:     b.Grade,
			NoRandom:  b.NoRandom,
			Include:   b.Include,
			Exclude:   b.Exclude,
			Effect:    b.Effect.Compile(),
			Branch:    branches,
			PostEvent: b.PostEvent,
		}
	}
	return out, nil
}

func compileAges(blocks []ageBlock) (map[int]AgeConfig, error) {
	out := make(map[int]AgeConfig, len(blocks))
	for _, b := range blocks {
		age, err := parseID("age", b.Age)
		if err != nil {
			return nil, err
		}
		var weights []EventWeight
		for _, ew := range b.Events {
			weights = append(weights, EventWeight{EventID: ew.ID, Weight: ew.Weight})
		}
		out[age] = AgeConfig{Age: age, Talents: b.Talents, Events: weights}
	}
	return out, nil
}

func compileAchievements(blocks []achievementBlock) (map[int]AchievementConfig, error) {
	out := make(map[int]AchievementConfig, len(blocks))
	for _, b := range blocks {
		id, err := parseID("achievement", b.ID)
		if err != nil {
			return nil, err
		}
		out[id] = AchievementConfig{
			ID:          id,
			Name:        b.Name,
			Description: b.Description,
			Grade:       b.Grade,
			Opportunity: ParseOpportunity(b.Opportunity),
			Condition:   b.Condition,
		}
	}
	return out, nil
}

func compileJudges(blocks []judgeBlock) (JudgeConfig, error) {
	out := make(JudgeConfig, len(blocks))
	for _, b := range blocks {
		prop := property.Parse(b.Property)
		var levels []JudgeLevel
		for _, lvl := range b.Levels {
			levels = append(levels, JudgeLevel{Min: lvl.Min, Grade: lvl.Grade, Text: lvl.Text})
		}
		out[prop] = levels
	}
	return out, nil
}
