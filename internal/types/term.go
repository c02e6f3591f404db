// Package types provides the shared data model used across aiql-core packages.
// This package exists to break import cycles between the chaining engine and
// the ontology reasoner. Types in this package are foundational data
// structures with no complex dependencies; nodes are immutable once built.
package types

import (
	"fmt"
	"strings"
)

// Term is the closed set of expression forms a Statement can hold.
// Composite arithmetic/set/function/lambda expressions are carried as Opaque
// terms; only their textual form matters to the reasoning core.
type Term interface {
	term()
	// Text returns the canonical textual form used for binding values,
	// de-duplication keys, and conflict reporting.
	Text() string
}

// Concept is a named entity, e.g. Socrates or Telephone.
// Concept names never carry decorative brackets; stripping `<>` is the
// front-end parser's job, not the core's.
type Concept struct {
	Name string
}

// Variable is a bare identifier. It is a unification variable iff its name
// starts with "?", e.g. ?Year. Other identifiers behave like constants.
type Variable struct {
	Name string
}

// Literal is a scalar value: number, string, or boolean.
type Literal struct {
	Value interface{}
}

// Opaque carries a composite expression (arithmetic, set, function call,
// lambda) the core does not interpret beyond textual comparison.
type Opaque struct {
	Form string
}

func (Concept) term()  {}
func (Variable) term() {}
func (Literal) term()  {}
func (Opaque) term()   {}

// Text implements Term.
func (c Concept) Text() string { return c.Name }

// Text implements Term.
func (v Variable) Text() string { return v.Name }

// Text implements Term.
func (l Literal) Text() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		// Trim the noise for integral floats so 1876.0 and 1876 compare equal.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Text implements Term.
func (o Opaque) Text() string { return o.Form }

// IsUnificationVariable reports whether t is a Variable whose name starts
// with "?".
func IsUnificationVariable(t Term) bool {
	v, ok := t.(Variable)
	return ok && strings.HasPrefix(v.Name, "?")
}

// Relation names the edge of a Statement. Tense is an optional tag the parser
// attaches ("past", "future"); it is ignored by structural equality.
type Relation struct {
	Name  string
	Tense string
}

// Statement is a single subject-relation-object triple with an optional
// attribute map. Attribute values are Terms so a query can hold a variable
// in an attribute slot.
type Statement struct {
	Subject  Term
	Relation Relation
	Object   Term
	Attrs    map[string]Term
}

// Key returns the canonical de-duplication key for the statement. Tense tags
// are excluded so a past-tense assertion and its plain form compare equal.
func (s Statement) Key() string {
	var b strings.Builder
	b.WriteString(s.Subject.Text())
	b.WriteByte('|')
	b.WriteString(s.Relation.Name)
	b.WriteByte('|')
	b.WriteString(s.Object.Text())
	if len(s.Attrs) > 0 {
		b.WriteByte('{')
		for i, k := range sortedKeys(s.Attrs) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(s.Attrs[k].Text())
		}
		b.WriteByte('}')
	}
	return b.String()
}

func sortedKeys(m map[string]Term) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Insertion sort; attribute maps stay small.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
