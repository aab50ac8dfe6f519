package catalog

import "github.com/lox/liferestart/property"

// EffectKind discriminates a compiled effect delta: a direct scalar mutation
// or a redirect onto one of the five RDM-eligible scalars. Modeling this as
// an enum variant rather than a flat RDM field keeps application a single
// switch instead of a parallel "is RDM set" check at every call site.
type EffectKind uint8

const (
	EffectScalar EffectKind = iota
	EffectRandom
)

// EffectDelta is one non-zero field of a talent or event effect, already
// resolved to a property.Property so application never re-parses a name.
type EffectDelta struct {
	Kind     EffectKind
	Property property.Property // meaningful only when Kind == EffectScalar
	Delta    int
}

// Effect is a compiled, ready-to-apply list of deltas. Zero-valued fields on
// the wire are dropped at compile time, so applying an Effect never touches
// a property it has no delta for.
type Effect []EffectDelta

// Apply runs every delta against state in order.
func (e Effect) Apply(state *property.State) {
	for _, d := range e {
		switch d.Kind {
		case EffectScalar:
			state.Change(d.Property, d.Delta)
		case EffectRandom:
			state.Change(property.Rdm, d.Delta)
		}
	}
}

// EffectSpec is the wire shape of an effect block: canonical keys
// CHR/INT/STR/MNY/SPR/LIF/AGE/RDM, each defaulting to 0 when absent.
type EffectSpec struct {
	Chr int `hcl:"CHR,optional"`
	Int int `hcl:"INT,optional"`
	Str int `hcl:"STR,optional"`
	Mny int `hcl:"MNY,optional"`
	Spr int `hcl:"SPR,optional"`
	Lif int `hcl:"LIF,optional"`
	Age int `hcl:"AGE,optional"`
	Rdm int `hcl:"RDM,optional"`
}

// Compile resolves a wire EffectSpec into an Effect, skipping zero fields.
func (spec *EffectSpec) Compile() Effect {
	if spec == nil {
		return nil
	}
	var e Effect
	add := func(p property.Property, delta int) {
		if delta != 0 {
			e = append(e, EffectDelta{Kind: EffectScalar, Property: p, Delta: delta})
		}
	}
	add(property.Chr, spec.Chr)
	add(property.Int, spec.Int)
	add(property.Str, spec.Str)
	add(property.Mny, spec.Mny)
	add(property.Spr, spec.Spr)
	add(property.Lif, spec.Lif)
	add(property.Age, spec.Age)
	if spec.Rdm != 0 {
		e = append(e, EffectDelta{Kind: EffectRandom, Delta: spec.Rdm})
	}
	return e
}
