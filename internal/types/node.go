package types

import (
	"fmt"
	"strings"
)

// Node is the closed tagged union of top-level logical forms. Every consumer
// (unification, forward chaining, consistency checking, conflict detection)
// switches exhaustively over this set; adding a variant forces each of them
// to be revisited.
type Node interface {
	node()
	// Key returns the canonical string key for structural equality and
	// knowledge-base de-duplication. Affective metadata (confidence,
	// coherence, signatures) is excluded: it is an opaque payload, not
	// logical content.
	Key() string
}

// IntentKind tags an Intent node. A query never unifies with an assertion.
type IntentKind string

const (
	IntentAssert IntentKind = "assert"
	IntentQuery  IntentKind = "query"
	IntentDefine IntentKind = "define"
	IntentTask   IntentKind = "task"
)

// Intent is a named assertion/query/task carrying one or more statements.
// Confidence and Coherence are optional 0..1 scores; Meta is free-form
// payload. All three pass through the core uninterpreted.
type Intent struct {
	Kind       IntentKind
	Statements []Statement
	Confidence *float64
	Coherence  *float64
	Meta       map[string]string
}

// Operator is a propositional connective. The surface form "then" is
// normalized to OpImplies by ParseOperator before a Compound is built.
type Operator string

const (
	OpAnd     Operator = "and"
	OpOr      Operator = "or"
	OpNot     Operator = "not"
	OpImplies Operator = "implies"
	OpIff     Operator = "iff"
)

// ParseOperator maps a surface operator token to its canonical Operator.
// The second return is false for unknown tokens.
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToLower(s) {
	case "and":
		return OpAnd, true
	case "or":
		return OpOr, true
	case "not":
		return OpNot, true
	case "implies", "then":
		return OpImplies, true
	case "iff":
		return OpIff, true
	}
	return "", false
}

// Compound is a propositional connective over two sub-nodes. For OpNot the
// operand lives in Left and Right is nil.
type Compound struct {
	Op    Operator
	Left  Node
	Right Node
}

// Quantifier binds a variable over a sub-formula.
type Quantifier string

const (
	Forall Quantifier = "forall"
	Exists Quantifier = "exists"
)

// Quantified is a bound variable over a body formula. Domain is an optional
// label naming the variable's domain.
type Quantified struct {
	Quantifier Quantifier
	Variable   string
	Domain     string
	Body       Node
}

// Rule is a named inference rule, logically equivalent to
// "Premises implies Conclusion". Bidirectional rules additionally license
// the reverse implication.
type Rule struct {
	ID            string
	Domain        string
	Bidirectional bool
	Confidence    *float64
	Premises      Node
	Conclusion    Node
}

// RelationshipKind tags a Relationship edge.
type RelationshipKind string

const (
	RelTemporal RelationshipKind = "temporal"
	RelCausal   RelationshipKind = "causal"
	RelLogical  RelationshipKind = "logical"
)

// Relationship is a typed edge between two referenced entities, outside the
// triple/Intent shape.
type Relationship struct {
	Kind          RelationshipKind
	Source        string
	Target        string
	Relation      string
	Confidence    *float64
	Bidirectional bool
}

func (*Intent) node()       {}
func (*Compound) node()     {}
func (*Quantified) node()   {}
func (*Rule) node()         {}
func (*Relationship) node() {}

// Key implements Node.
func (n *Intent) Key() string {
	parts := make([]string, len(n.Statements))
	for i, s := range n.Statements {
		parts[i] = s.Key()
	}
	return fmt.Sprintf("!%s[%s]", n.Kind, strings.Join(parts, ";"))
}

// Key implements Node.
func (n *Compound) Key() string {
	if n.Op == OpNot {
		return fmt.Sprintf("(not %s)", keyOrEmpty(n.Left))
	}
	return fmt.Sprintf("(%s %s %s)", n.Op, keyOrEmpty(n.Left), keyOrEmpty(n.Right))
}

// Key implements Node.
func (n *Quantified) Key() string {
	return fmt.Sprintf("(%s %s:%s %s)", n.Quantifier, n.Variable, n.Domain, keyOrEmpty(n.Body))
}

// Key implements Node.
func (n *Rule) Key() string {
	arrow := "=>"
	if n.Bidirectional {
		arrow = "<=>"
	}
	return fmt.Sprintf("rule:%s(%s %s %s)", n.ID, keyOrEmpty(n.Premises), arrow, keyOrEmpty(n.Conclusion))
}

// Key implements Node.
func (n *Relationship) Key() string {
	arrow := "->"
	if n.Bidirectional {
		arrow = "<->"
	}
	return fmt.Sprintf("rel:%s(%s %s[%s] %s)", n.Kind, n.Source, arrow, n.Relation, n.Target)
}

func keyOrEmpty(n Node) string {
	if n == nil {
		return "_"
	}
	return n.Key()
}

// Equal reports structural equality of two nodes via their canonical keys.
// Nil compares equal only to nil.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Assert builds a single-statement assertion Intent. Convenience for the
// chaining engine and tests.
func Assert(subject Term, relation string, object Term) *Intent {
	return &Intent{
		Kind: IntentAssert,
		Statements: []Statement{{
			Subject:  subject,
			Relation: Relation{Name: relation},
			Object:   object,
		}},
	}
}

// Not wraps a node in negation.
func Not(n Node) *Compound { return &Compound{Op: OpNot, Left: n} }

// Implies builds an implication compound.
func Implies(premise, conclusion Node) *Compound {
	return &Compound{Op: OpImplies, Left: premise, Right: conclusion}
}

// And builds a conjunction compound.
func And(left, right Node) *Compound { return &Compound{Op: OpAnd, Left: left, Right: right} }

// Or builds a disjunction compound.
func Or(left, right Node) *Compound { return &Compound{Op: OpOr, Left: left, Right: right} }
