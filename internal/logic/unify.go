package logic

import (
	"github.com/aiql-org/aiql-core/internal/types"
)

// Bindings maps unification variable names (including the leading "?") to the
// textual form of the value each variable was bound to.
type Bindings map[string]string

// Unify structurally matches two nodes and returns the accumulated variable
// bindings. The second return is false on no-match; in that case the map is
// nil, never partially filled. Matching an empty pair of ground nodes
// succeeds with an empty map, which is distinct from failure.
//
// Only nodes of the same variant can unify; an Intent never matches a
// Compound. Intent kinds must agree exactly: a query does not unify with an
// assertion even when their statements line up.
func Unify(a, b types.Node) (Bindings, bool) {
	bindings := make(Bindings)
	if !unifyNodes(a, b, bindings) {
		return nil, false
	}
	return bindings, true
}

func unifyNodes(a, b types.Node, bindings Bindings) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch an := a.(type) {
	case *types.Intent:
		bn, ok := b.(*types.Intent)
		if !ok || an.Kind != bn.Kind || len(an.Statements) != len(bn.Statements) {
			return false
		}
		for i := range an.Statements {
			if !unifyStatements(an.Statements[i], bn.Statements[i], bindings) {
				return false
			}
		}
		return true

	case *types.Compound:
		bn, ok := b.(*types.Compound)
		if !ok || an.Op != bn.Op {
			return false
		}
		return unifyNodes(an.Left, bn.Left, bindings) && unifyNodes(an.Right, bn.Right, bindings)

	case *types.Quantified:
		bn, ok := b.(*types.Quantified)
		if !ok || an.Quantifier != bn.Quantifier || an.Variable != bn.Variable {
			return false
		}
		return unifyNodes(an.Body, bn.Body, bindings)

	case *types.Rule:
		bn, ok := b.(*types.Rule)
		if !ok {
			return false
		}
		return unifyNodes(an.Premises, bn.Premises, bindings) &&
			unifyNodes(an.Conclusion, bn.Conclusion, bindings)

	case *types.Relationship:
		bn, ok := b.(*types.Relationship)
		if !ok {
			return false
		}
		return an.Kind == bn.Kind && an.Relation == bn.Relation &&
			an.Source == bn.Source && an.Target == bn.Target

	default:
		// Unknown variant: inert, never a match.
		return false
	}
}

// unifyStatements matches subject, relation name, and object pairwise, then
// the union of attribute keys from both sides. Tense tags do not participate.
func unifyStatements(a, b types.Statement, bindings Bindings) bool {
	if a.Relation.Name != b.Relation.Name {
		return false
	}
	if !unifyTerms(a.Subject, b.Subject, bindings) {
		return false
	}
	if !unifyTerms(a.Object, b.Object, bindings) {
		return false
	}

	for key, av := range a.Attrs {
		bv, ok := b.Attrs[key]
		if !ok {
			// Present on one side only: a bare variable is unconstrained,
			// a concrete value has nothing to match against.
			if types.IsUnificationVariable(av) {
				continue
			}
			return false
		}
		if !unifyTerms(av, bv, bindings) {
			return false
		}
	}
	for key, bv := range b.Attrs {
		if _, ok := a.Attrs[key]; ok {
			continue
		}
		if types.IsUnificationVariable(bv) {
			continue
		}
		return false
	}
	return true
}

// unifyTerms matches two terms, binding unification variables to the other
// side's textual form. A variable already bound to a different value fails
// the whole match.
func unifyTerms(a, b types.Term, bindings Bindings) bool {
	aVar := types.IsUnificationVariable(a)
	bVar := types.IsUnificationVariable(b)

	switch {
	case aVar && bVar:
		// Two variables co-occurring is rare; identical names trivially
		// match, distinct names alias without a concrete value to pin.
		return true
	case aVar:
		return bind(bindings, a.(types.Variable).Name, b.Text())
	case bVar:
		return bind(bindings, b.(types.Variable).Name, a.Text())
	default:
		return a.Text() == b.Text()
	}
}

func bind(bindings Bindings, name, value string) bool {
	if existing, ok := bindings[name]; ok {
		return existing == value
	}
	bindings[name] = value
	return true
}
