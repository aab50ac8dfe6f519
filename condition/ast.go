package condition

import "github.com/lox/liferestart/property"

// Node is the condition AST: a strictly tree-shaped tagged union with
// owning edges only (no cycle-breaking discipline required).
type Node interface {
	node()
}

// Single is a leaf condition such as "CHR>5".
type Single struct {
	Property property.Property
	Op       Operator
	Value    Value
}

// And is a conjunction of two subexpressions.
type And struct {
	Left, Right Node
}

// Or is a disjunction of two subexpressions.
type Or struct {
	Left, Right Node
}

func (Single) node() {}
func (And) node()    {}
func (Or) node()     {}

// Operator is a comparison or set operator recognised by the DSL.
type Operator uint8

const (
	Greater Operator = iota
	Less
	GreaterEqual
	LessEqual
	Equal
	NotEqual
	IncludesAny // ?
	ExcludesAll // !
)

// operatorTokens is checked in this order so that multi-character operators
// are matched before their single-character prefixes (">=" before ">").
var operatorTokens = []struct {
	text string
	op   Operator
}{
	{">=", GreaterEqual},
	{"<=", LessEqual},
	{"!=", NotEqual},
	{">", Greater},
	{"<", Less},
	{"=", Equal},
	{"?", IncludesAny},
	{"!", ExcludesAll},
}

// ValueKind discriminates the literal kinds a condition's right-hand side
// may take.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindArray
	KindString
)

// Value is a parsed condition literal.
type Value struct {
	Kind   ValueKind
	Int    int
	Float  float64
	Array  []int
	String string
}
