package property

import "math/rand/v2"

// Value is the result of a property lookup: either a scalar integer or a
// list of integers (TLT/EVT). Exactly one of the two is meaningful,
// discriminated by List != nil.
type Value struct {
	Int  int
	List []int
}

// State is the mutable per-run game state (PropertyState in the spec).
// Every tracked scalar carries a running minimum (L-prefixed) and maximum
// (H-prefixed) observed since New. TLT and EVT are append-only sets kept
// in insertion order.
type State struct {
	Age, Chr, Int, Str, Mny, Spr, Lif int
	Tlt, Evt                          []int

	LAge, LChr, LInt, LStr, LMny, LSpr int
	HAge, HChr, HInt, HStr, HMny, HSpr int

	rng *rand.Rand
}

// New creates a State with the caller-supplied scalars, SPR and LIF taken
// from the spr/lif arguments as given (the engine passes 5 and 1), and
// age=-1 (the first tick
// advances it to 0). Extrema are initialised to the seed values. rng is
// used only by the RDM effect's random-target redirect and must not be
// nil.
func New(rng *rand.Rand, chr, intl, str, mny, spr, lif int) *State {
	s := &State{
		Age: -1, Chr: chr, Int: intl, Str: str, Mny: mny, Spr: spr, Lif: lif,
		Tlt: make([]int, 0, 8), Evt: make([]int, 0, 64),
		rng: rng,
	}
	s.LAge, s.HAge = s.Age, s.Age
	s.LChr, s.HChr = s.Chr, s.Chr
	s.LInt, s.HInt = s.Int, s.Int
	s.LStr, s.HStr = s.Str, s.Str
	s.LMny, s.HMny = s.Mny, s.Mny
	s.LSpr, s.HSpr = s.Spr, s.Spr
	return s
}

// Change mutates one property by delta and restores the lX <= X <= hX
// invariant. For TLT/EVT, delta is interpreted as an id to append iff not
// already present. For RDM, delta is redirected onto a uniformly chosen
// scalar from RandomTargets.
func (s *State) Change(p Property, delta int) {
	switch p {
	case Age:
		s.Age += delta
		s.LAge, s.HAge = min(s.LAge, s.Age), max(s.HAge, s.Age)
	case Chr:
		s.Chr += delta
		s.LChr, s.HChr = min(s.LChr, s.Chr), max(s.HChr, s.Chr)
	case Int:
		s.Int += delta
		s.LInt, s.HInt = min(s.LInt, s.Int), max(s.HInt, s.Int)
	case Str:
		s.Str += delta
		s.LStr, s.HStr = min(s.LStr, s.Str), max(s.HStr, s.Str)
	case Mny:
		s.Mny += delta
		s.LMny, s.HMny = min(s.LMny, s.Mny), max(s.HMny, s.Mny)
	case Spr:
		s.Spr += delta
		s.LSpr, s.HSpr = min(s.LSpr, s.Spr), max(s.HSpr, s.Spr)
	case Lif:
		s.Lif += delta
	case Tlt:
		if !contains(s.Tlt, delta) {
			s.Tlt = append(s.Tlt, delta)
		}
	case Evt:
		if !contains(s.Evt, delta) {
			s.Evt = append(s.Evt, delta)
		}
	case Rdm:
		target := RandomTargets[s.rng.IntN(len(RandomTargets))]
		s.Change(target, delta)
	}
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// RNG returns the State's RNG source, shared with the engine for weighted
// selection so a run draws from a single deterministic-per-seed stream
// rather than juggling several independently-seeded sources.
func (s *State) RNG() *rand.Rand {
	return s.rng
}

// IsEnd reports whether the run has ended: LIF has dropped below 1.
func (s *State) IsEnd() bool {
	return s.Lif < 1
}

// SummaryScore is the historical-extrema score used for the final judge
// sweep: (hCHR+hINT+hSTR+hMNY+hSPR)*2 + hAGE/2, each h taken as the max of
// the tracked running maximum and the current value.
func (s *State) SummaryScore() int {
	hchr := max(s.HChr, s.Chr)
	hint := max(s.HInt, s.Int)
	hstr := max(s.HStr, s.Str)
	hmny := max(s.HMny, s.Mny)
	hspr := max(s.HSpr, s.Spr)
	hage := max(s.HAge, s.Age)
	return (hchr+hint+hstr+hmny+hspr)*2 + hage/2
}

// Lookup resolves a property to its current value for condition evaluation.
// L*/H* keys report the running extremum folded with the current value;
// SUM reports SummaryScore; an unrecognised property reports 0, a
// defensive default rather than an error.
func (s *State) Lookup(p Property) Value {
	switch p {
	case Age:
		return Value{Int: s.Age}
	case Chr:
		return Value{Int: s.Chr}
	case Int:
		return Value{Int: s.Int}
	case Str:
		return Value{Int: s.Str}
	case Mny:
		return Value{Int: s.Mny}
	case Spr:
		return Value{Int: s.Spr}
	case Lif:
		return Value{Int: s.Lif}
	case Tlt:
		return Value{List: s.Tlt}
	case Evt:
		return Value{List: s.Evt}
	case LAge:
		return Value{Int: min(s.LAge, s.Age)}
	case LChr:
		return Value{Int: min(s.LChr, s.Chr)}
	case LInt:
		return Value{Int: min(s.LInt, s.Int)}
	case LStr:
		return Value{Int: min(s.LStr, s.Str)}
	case LMny:
		return Value{Int: min(s.LMny, s.Mny)}
	case LSpr:
		return Value{Int: min(s.LSpr, s.Spr)}
	case HAge:
		return Value{Int: max(s.HAge, s.Age)}
	case HChr:
		return Value{Int: max(s.HChr, s.Chr)}
	case HInt:
		return Value{Int: max(s.HInt, s.Int)}
	case HStr:
		return Value{Int: max(s.HStr, s.Str)}
	case HMny:
		return Value{Int: max(s.HMny, s.Mny)}
	case HSpr:
		return Value{Int: max(s.HSpr, s.Spr)}
	case Sum:
		return Value{Int: s.SummaryScore()}
	default:
		return Value{Int: 0}
	}
}

// Snapshot returns the current scalar properties keyed by name, used to
// populate a trajectory entry for a single year.
func (s *State) Snapshot() map[string]int {
	return map[string]int{
		"AGE": s.Age,
		"CHR": s.Chr,
		"INT": s.Int,
		"STR": s.Str,
		"MNY": s.Mny,
		"SPR": s.Spr,
		"LIF": s.Lif,
	}
}
