package condition

import "github.com/lox/liferestart/property"

// Check evaluates a parsed condition tree against a property lookup source.
// Lookup is satisfied by *property.State; it is an interface here so tests
// can exercise the evaluator against bare fixtures.
type Lookup interface {
	Lookup(p property.Property) property.Value
}

// Check walks node, dispatching each Single leaf to checkSingle and folding
// And/Or nodes with ordinary boolean short-circuiting.
func Check(node Node, state Lookup) bool {
	switch n := node.(type) {
	case Single:
		return checkSingle(n, state)
	case And:
		return Check(n.Left, state) && Check(n.Right, state)
	case Or:
		return Check(n.Left, state) || Check(n.Right, state)
	default:
		return false
	}
}

// checkSingle evaluates one leaf condition. Only the operator/kind
// combinations below are meaningful; every other combination is defined to
// be false rather than an error, matching the DSL's permissive evaluation
// model (a condition referencing a property in a way that makes no sense
// simply never matches).
func checkSingle(s Single, state Lookup) bool {
	value := state.Lookup(s.Property)

	switch s.Op {
	case Equal, NotEqual:
		if value.List != nil && s.Value.Kind == KindInt {
			contains := containsInt(value.List, s.Value.Int)
			if s.Op == Equal {
				return contains
			}
			return !contains
		}
		return checkComparison(s.Op, value, s.Value)
	case Greater, Less, GreaterEqual, LessEqual:
		return checkComparison(s.Op, value, s.Value)
	case IncludesAny:
		return checkIncludesAny(value, s.Value)
	case ExcludesAll:
		return !checkIncludesAny(value, s.Value)
	default:
		return false
	}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func checkComparison(op Operator, value property.Value, want Value) bool {
	var lhs, rhs float64
	switch want.Kind {
	case KindInt:
		lhs, rhs = float64(value.Int), float64(want.Int)
	case KindFloat:
		lhs, rhs = float64(value.Int), want.Float
	default:
		return false
	}

	switch op {
	case Greater:
		return lhs > rhs
	case Less:
		return lhs < rhs
	case GreaterEqual:
		return lhs >= rhs
	case LessEqual:
		return lhs <= rhs
	case Equal:
		return lhs == rhs
	case NotEqual:
		return lhs != rhs
	default:
		return false
	}
}

// checkIncludesAny reports whether value's list contains any of want's
// array elements (or, for a scalar, whether it equals any of them). Used
// directly by IncludesAny and negated for ExcludesAll.
func checkIncludesAny(value property.Value, want Value) bool {
	if want.Kind != KindArray {
		return false
	}
	if value.List != nil {
		for _, v := range value.List {
			for _, w := range want.Array {
				if v == w {
					return true
				}
			}
		}
		return false
	}
	for _, w := range want.Array {
		if value.Int == w {
			return true
		}
	}
	return false
}
