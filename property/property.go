// Package property implements the mutable per-run game state (PropertyState
// in the spec) and the closed enumeration of property names the condition
// DSL and effect application dispatch on.
//
// Dispatch on a closed enum rather than string comparison is deliberate:
// property names are resolved once, at parse time, and every hot-path
// lookup after that switches on the enum instead of re-comparing bytes.
package property

import "strings"

// Property is the closed set of names the condition DSL and effect system
// may reference. Zero value is Unknown.
type Property uint8

const (
	Unknown Property = iota
	Age
	Chr
	Int
	Str
	Mny
	Spr
	Lif
	Tlt
	Evt
	Rdm
	LAge
	LChr
	LInt
	LStr
	LMny
	LSpr
	HAge
	HChr
	HInt
	HStr
	HMny
	HSpr
	Sum
)

var byName = map[string]Property{
	"AGE": Age, "CHR": Chr, "INT": Int, "STR": Str, "MNY": Mny, "SPR": Spr, "LIF": Lif,
	"TLT": Tlt, "EVT": Evt, "RDM": Rdm,
	"LAGE": LAge, "LCHR": LChr, "LINT": LInt, "LSTR": LStr, "LMNY": LMny, "LSPR": LSpr,
	"HAGE": HAge, "HCHR": HChr, "HINT": HInt, "HSTR": HStr, "HMNY": HMny, "HSPR": HSpr,
	"SUM": Sum,
}

// Parse resolves a bare property name (already upper-cased in well-formed
// configuration) to its enum value. Unrecognised names resolve to Unknown;
// looking up Unknown yields the scalar 0 (a defensive default, never an
// error), and conditions compare against that 0 like any other scalar.
func Parse(name string) Property {
	if p, ok := byName[strings.ToUpper(name)]; ok {
		return p
	}
	return Unknown
}

// IsList reports whether the property denotes a list-valued field (TLT/EVT)
// rather than a scalar.
func (p Property) IsList() bool {
	return p == Tlt || p == Evt
}

func (p Property) String() string {
	for name, v := range byName {
		if v == p {
			return name
		}
	}
	return "UNKNOWN"
}

// RandomTargets are the scalars the RDM effect may redirect into, chosen
// uniformly at random. AGE and LIF are deliberately excluded.
var RandomTargets = [5]Property{Chr, Int, Str, Mny, Spr}
