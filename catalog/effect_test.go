package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/lox/liferestart/property"
)

func TestEffectSpecCompileSkipsZeroFields(t *testing.T) {
	spec := &EffectSpec{Chr: 5}
	effect := spec.Compile()
	if len(effect) != 1 {
		t.Fatalf("expected exactly one delta, got %d: %+v", len(effect), effect)
	}
	if effect[0].Property != property.Chr || effect[0].Delta != 5 {
		t.Errorf("unexpected delta: %+v", effect[0])
	}
}

func TestEffectSpecCompileRandomIsDistinctVariant(t *testing.T) {
	spec := &EffectSpec{Rdm: 3}
	effect := spec.Compile()
	if len(effect) != 1 || effect[0].Kind != EffectRandom {
		t.Fatalf("expected a single EffectRandom delta, got %+v", effect)
	}
}

func TestEffectSpecCompileNilIsEmpty(t *testing.T) {
	var spec *EffectSpec
	if effect := spec.Compile(); effect != nil {
		t.Errorf("expected nil effect for nil spec, got %+v", effect)
	}
}

func TestEffectApplyUpdatesState(t *testing.T) {
	s := property.New(rand.New(rand.NewPCG(1, 2)), 5, 5, 5, 5, 5, 1)
	effect := (&EffectSpec{Chr: 3, Lif: -1}).Compile()
	effect.Apply(s)
	if s.Chr != 8 || s.Lif != 0 {
		t.Errorf("expected chr=8 lif=0, got chr=%d lif=%d", s.Chr, s.Lif)
	}
}

func TestEffectApplyRandomRedirectsOnce(t *testing.T) {
	s := property.New(rand.New(rand.NewPCG(7, 9)), 5, 5, 5, 5, 5, 1)
	effect := (&EffectSpec{Rdm: 10}).Compile()
	before := map[property.Property]int{
		property.Chr: s.Chr, property.Int: s.Int, property.Str: s.Str,
		property.Mny: s.Mny, property.Spr: s.Spr,
	}
	effect.Apply(s)
	changed := 0
	for p, v := range before {
		if s.Lookup(p).Int != v {
			changed++
		}
	}
	if changed != 1 {
		t.Errorf("expected exactly one scalar to change, got %d", changed)
	}
}
