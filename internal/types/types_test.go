package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTermText(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"concept", Concept{Name: "Socrates"}, "Socrates"},
		{"variable", Variable{Name: "?Year"}, "?Year"},
		{"string literal", Literal{Value: "hello"}, "hello"},
		{"int literal", Literal{Value: 1876}, "1876"},
		{"integral float", Literal{Value: 1876.0}, "1876"},
		{"fractional float", Literal{Value: 0.5}, "0.5"},
		{"bool literal", Literal{Value: true}, "true"},
		{"opaque", Opaque{Form: "(x + 1)"}, "(x + 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUnificationVariable(t *testing.T) {
	if !IsUnificationVariable(Variable{Name: "?X"}) {
		t.Error("?X should be a unification variable")
	}
	if IsUnificationVariable(Variable{Name: "X"}) {
		t.Error("bare identifier X is not a unification variable")
	}
	if IsUnificationVariable(Concept{Name: "?X"}) {
		t.Error("concepts are never unification variables")
	}
}

func TestParseOperator(t *testing.T) {
	op, ok := ParseOperator("then")
	if !ok || op != OpImplies {
		t.Errorf("ParseOperator(then) = %v, %v; want implies", op, ok)
	}
	if _, ok := ParseOperator("xor"); ok {
		t.Error("unknown operator should not parse")
	}
}

func TestStatementKeyIgnoresTense(t *testing.T) {
	past := Statement{
		Subject:  Concept{Name: "Bell"},
		Relation: Relation{Name: "invented", Tense: "past"},
		Object:   Concept{Name: "Telephone"},
	}
	plain := Statement{
		Subject:  Concept{Name: "Bell"},
		Relation: Relation{Name: "invented"},
		Object:   Concept{Name: "Telephone"},
	}
	if past.Key() != plain.Key() {
		t.Errorf("tense should not affect keys: %q vs %q", past.Key(), plain.Key())
	}
}

func TestStatementKeyAttributeOrder(t *testing.T) {
	a := Statement{
		Subject:  Concept{Name: "Bell"},
		Relation: Relation{Name: "invented"},
		Object:   Concept{Name: "Telephone"},
		Attrs: map[string]Term{
			"year":  Literal{Value: 1876},
			"place": Concept{Name: "Boston"},
		},
	}
	b := Statement{
		Subject:  Concept{Name: "Bell"},
		Relation: Relation{Name: "invented"},
		Object:   Concept{Name: "Telephone"},
		Attrs: map[string]Term{
			"place": Concept{Name: "Boston"},
			"year":  Literal{Value: 1876},
		},
	}
	if a.Key() != b.Key() {
		t.Errorf("attribute order should not affect keys: %q vs %q", a.Key(), b.Key())
	}
}

func TestNodeEqual(t *testing.T) {
	socrates := Assert(Concept{Name: "Socrates"}, "is", Concept{Name: "Man"})
	mortal := Assert(Concept{Name: "Socrates"}, "is", Concept{Name: "Mortal"})

	if !Equal(socrates, Assert(Concept{Name: "Socrates"}, "is", Concept{Name: "Man"})) {
		t.Error("structurally identical intents should be equal")
	}
	if Equal(socrates, mortal) {
		t.Error("different objects should not be equal")
	}
	if Equal(socrates, Not(socrates)) {
		t.Error("a node and its negation should not be equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
	if Equal(socrates, nil) {
		t.Error("node should not equal nil")
	}
}

func TestEqualIgnoresMetadata(t *testing.T) {
	conf := 0.9
	a := Assert(Concept{Name: "Sky"}, "has_color", Concept{Name: "Blue"})
	b := Assert(Concept{Name: "Sky"}, "has_color", Concept{Name: "Blue"})
	b.Confidence = &conf
	b.Meta = map[string]string{"source": "sensor"}

	if !Equal(a, b) {
		t.Error("confidence and metadata are opaque payloads, not logical content")
	}
}

func TestEqualDistinguishesIntentKinds(t *testing.T) {
	assertion := Assert(Concept{Name: "Sky"}, "has_color", Concept{Name: "Blue"})
	query := &Intent{Kind: IntentQuery, Statements: assertion.Statements}
	if Equal(assertion, query) {
		t.Error("a query and an assertion with the same statements are distinct nodes")
	}
}

func TestCompoundKeys(t *testing.T) {
	p := Assert(Concept{Name: "P"}, "holds", Literal{Value: true})
	q := Assert(Concept{Name: "Q"}, "holds", Literal{Value: true})

	if !Equal(Implies(p, q), Implies(p, q)) {
		t.Error("identical implications should be equal")
	}
	if Equal(Implies(p, q), Implies(q, p)) {
		t.Error("implication direction matters")
	}
	if Equal(And(p, q), Or(p, q)) {
		t.Error("operator matters")
	}
}

func TestRuleAndRelationshipKeys(t *testing.T) {
	p := Assert(Concept{Name: "P"}, "holds", Literal{Value: true})
	q := Assert(Concept{Name: "Q"}, "holds", Literal{Value: true})

	uni := &Rule{ID: "r1", Premises: p, Conclusion: q}
	bi := &Rule{ID: "r1", Bidirectional: true, Premises: p, Conclusion: q}
	if Equal(uni, bi) {
		t.Error("bidirectionality is part of a rule's identity")
	}

	rel := &Relationship{Kind: RelCausal, Source: "a", Target: "b", Relation: "causes"}
	same := &Relationship{Kind: RelCausal, Source: "a", Target: "b", Relation: "causes"}
	if !Equal(rel, same) {
		t.Error("identical relationships should be equal")
	}

	if diff := cmp.Diff(rel.Key(), same.Key()); diff != "" {
		t.Errorf("relationship keys differ (-want +got):\n%s", diff)
	}
}
