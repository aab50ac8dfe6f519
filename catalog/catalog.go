// Package catalog defines the immutable configuration schema the engine
// simulates against — talents, events, ages, achievements, and judge
// thresholds — plus a reference HCL loader for fixtures and the demo CLI.
//
// Ingesting configuration from an arbitrary host runtime is explicitly out
// of scope for the engine itself: New always takes already-built catalogue
// maps. Load exists purely as a fixture/demo convenience; a production
// embedder is expected to construct these maps however its own host
// environment already represents game data.
package catalog

// Catalog is the complete, immutable-for-the-run configuration an Engine
// simulates against. Keys are catalogue ids; duplicates within a catalogue
// are a caller error (when built via Load, a later block with the same id
// overwrites an earlier one).
type Catalog struct {
	Talents      map[int]TalentConfig
	Events       map[int]EventConfig
	Ages         map[int]AgeConfig
	Achievements map[int]AchievementConfig
	Judges       JudgeConfig
}

// New builds a Catalog from already-constructed maps, applying the same
// normalization the spec's Engine::new performs: defaulting unset
// MaxTriggers to 1 and sorting each judge level list by Min descending.
// It validates nothing else — configuration is trusted at ingest.
func New(talents map[int]TalentConfig, events map[int]EventConfig, ages map[int]AgeConfig, achievements map[int]AchievementConfig, judges JudgeConfig) *Catalog {
	for id, t := range talents {
		t.normalize()
		talents[id] = t
	}
	if judges == nil {
		judges = JudgeConfig{}
	}
	judges.sortLevels()

	return &Catalog{
		Talents:      talents,
		Events:       events,
		Ages:         ages,
		Achievements: achievements,
		Judges:       judges,
	}
}
