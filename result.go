package liferestart

// ContentKind discriminates a year's narrative content entries: a talent
// firing or an event (possibly chained) resolving.
type ContentKind uint8

const (
	ContentTalent ContentKind = iota
	ContentEvent
)

// YearContent is one narrative beat within a trajectory entry.
type YearContent struct {
	Kind        ContentKind
	Description string
	Grade       int
	// Name is set only for ContentTalent entries.
	Name string
}

// TrajectoryEntry is one simulated year's outcome.
type TrajectoryEntry struct {
	Age        int
	Content    []YearContent
	IsEnd      bool
	Properties map[string]int
}

// PropertyJudge grades one scalar's historical maximum against the
// catalogue's ordered judge thresholds.
type PropertyJudge struct {
	Property string
	Value    int
	Grade    int
	Text     string
	Progress float64
}

// TalentInfo augments a final talent id with its catalogue name/description
// for presentation in a SummaryResult.
type TalentInfo struct {
	ID          int
	Name        string
	Description string
	Grade       int
}

// SummaryResult is the run's end-of-life grading.
type SummaryResult struct {
	TotalScore int
	Judges     []PropertyJudge
	Talents    []TalentInfo
}

// AchievementInfo is one achievement unlocked during the run.
type AchievementInfo struct {
	ID          int
	Name        string
	Description string
	Grade       int
}

// ReplacementResult records one talent-replacement substitution performed
// at session start.
type ReplacementResult struct {
	SourceID   int
	SourceName string
	TargetID   int
	TargetName string
}

// SimulationResult is the full output of one Simulate call.
type SimulationResult struct {
	Trajectory       []TrajectoryEntry
	Summary          SummaryResult
	NewAchievements  []AchievementInfo
	TriggeredEvents  []int
	Replacements     []ReplacementResult
	// TriggerCounts exposes how many times each talent fired across the
	// run, keyed by talent id — beyond what the trajectory's content
	// entries convey, for consumers that want the raw counter.
	TriggerCounts map[int]int
}
