package catalog

// TalentConfig is one entry in the talent catalogue.
type TalentConfig struct {
	ID          int
	Name        string
	Description string
	Grade       int
	MaxTriggers int // default 1, enforced by normalize
	Condition   string
	Effect      Effect
	Exclusive   bool
	Exclude     []int
	Replacement *TalentReplacement
	Status      int
}

// TalentReplacement describes the weighted pools a talent may be replaced
// by at session start: by grade (every eligible talent of that grade) or by
// explicit talent id.
type TalentReplacement struct {
	Grade  map[int]float64 // grade -> weight
	Talent map[int]float64 // talent id -> weight
}

// normalize applies the catalogue-wide default for MaxTriggers (1) to
// entries that left it unset. Called once by New after loading.
func (t *TalentConfig) normalize() {
	if t.MaxTriggers == 0 {
		t.MaxTriggers = 1
	}
}

// Excludes reports whether candidate appears in t's exclude list.
func (t TalentConfig) Excludes(candidate int) bool {
	for _, id := range t.Exclude {
		if id == candidate {
			return true
		}
	}
	return false
}
