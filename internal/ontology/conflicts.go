package ontology

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// ConflictType categorizes a semantic conflict.
type ConflictType string

const (
	ConflictTaxonomy    ConflictType = "taxonomy"
	ConflictCardinality ConflictType = "cardinality"
	ConflictDisjoint    ConflictType = "disjoint"
	ConflictTypeCheck   ConflictType = "type"
)

// Severity ranks how damaging a conflict is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
)

// Conflict reports a semantic clash between two statements about the same
// subject. Both offending statements are carried verbatim for reporting.
type Conflict struct {
	Type     ConflictType
	Severity Severity
	Subject  string
	Detail   string
	First    types.Statement
	Second   types.Statement
}

// DetectConflict checks two statements for a semantic conflict. It applies
// only when both subjects are identical; the checks run in priority order
// (taxonomy, cardinality, disjoint values, domain/range) and the first hit
// wins. The second return is false when there is no conflict.
func (r *Reasoner) DetectConflict(first, second types.Statement) (Conflict, bool) {
	subject := first.Subject.Text()
	if subject == "" || subject != second.Subject.Text() {
		return Conflict{}, false
	}

	if c, ok := r.taxonomyConflict(subject, first, second); ok {
		return c, true
	}
	if c, ok := r.cardinalityConflict(subject, first, second); ok {
		return c, true
	}
	if c, ok := r.disjointValueConflict(subject, first, second); ok {
		return c, true
	}
	if c, ok := r.typeConflict(subject, first, second); ok {
		return c, true
	}
	return Conflict{}, false
}

// taxonomyConflict: both statements classify the subject and the two classes
// are registered as mutually exclusive.
func (r *Reasoner) taxonomyConflict(subject string, first, second types.Statement) (Conflict, bool) {
	if !isClassifying(first.Relation.Name) || !isClassifying(second.Relation.Name) {
		return Conflict{}, false
	}
	a, b := first.Object.Text(), second.Object.Text()
	if !r.AreDisjoint(a, b) {
		return Conflict{}, false
	}
	return Conflict{
		Type:     ConflictTaxonomy,
		Severity: SeverityCritical,
		Subject:  subject,
		Detail:   fmt.Sprintf("%s cannot belong to disjoint classes %s and %s", subject, a, b),
		First:    first,
		Second:   second,
	}, true
}

func isClassifying(relation string) bool {
	return relation == RelationIsA || relation == RelationInstanceOf
}

// cardinalityConflict: same relation, cardinality-one constraint, two
// different values. The same value twice is a harmless restatement.
func (r *Reasoner) cardinalityConflict(subject string, first, second types.Statement) (Conflict, bool) {
	relation := first.Relation.Name
	if relation != second.Relation.Name {
		return Conflict{}, false
	}
	constraint, ok := r.constraints[relation]
	if !ok || constraint.Cardinality != CardinalityOne {
		return Conflict{}, false
	}
	a, b := first.Object.Text(), second.Object.Text()
	if a == b {
		return Conflict{}, false
	}
	return Conflict{
		Type:     ConflictCardinality,
		Severity: SeverityMajor,
		Subject:  subject,
		Detail:   fmt.Sprintf("%s allows one value per subject but %s has both %s and %s", relation, subject, a, b),
		First:    first,
		Second:   second,
	}, true
}

// disjointValueConflict: the first relation's constraint lists the second
// relation as mutually exclusive (checked both ways; the registry entries
// are written symmetrically but callers may register one direction only).
func (r *Reasoner) disjointValueConflict(subject string, first, second types.Statement) (Conflict, bool) {
	if !r.relationsDisjoint(first.Relation.Name, second.Relation.Name) &&
		!r.relationsDisjoint(second.Relation.Name, first.Relation.Name) {
		return Conflict{}, false
	}
	return Conflict{
		Type:     ConflictDisjoint,
		Severity: SeverityCritical,
		Subject:  subject,
		Detail:   fmt.Sprintf("%s and %s are mutually exclusive properties of %s", first.Relation.Name, second.Relation.Name, subject),
		First:    first,
		Second:   second,
	}, true
}

func (r *Reasoner) relationsDisjoint(a, b string) bool {
	constraint, ok := r.constraints[a]
	if !ok {
		return false
	}
	for _, rel := range constraint.DisjointWith {
		if rel == b {
			return true
		}
	}
	return false
}

// typeConflict: a relation with a declared domain or range applied to a
// subject or object that is provably not an instance of that class. The
// check only fires when the hierarchy actually knows the name, so unlearned
// entities never produce false positives.
func (r *Reasoner) typeConflict(subject string, first, second types.Statement) (Conflict, bool) {
	for _, stmt := range []types.Statement{first, second} {
		constraint, ok := r.constraints[stmt.Relation.Name]
		if !ok {
			continue
		}
		if constraint.Domain != "" && r.KnowsSubject(subject) && !r.IsInstanceOf(subject, constraint.Domain) {
			return Conflict{
				Type:     ConflictTypeCheck,
				Severity: SeverityMajor,
				Subject:  subject,
				Detail:   fmt.Sprintf("%s requires a %s subject but %s is not one", stmt.Relation.Name, constraint.Domain, subject),
				First:    first,
				Second:   second,
			}, true
		}
		object := stmt.Object.Text()
		if constraint.Range != "" && r.KnowsSubject(object) && !r.IsInstanceOf(object, constraint.Range) {
			return Conflict{
				Type:     ConflictTypeCheck,
				Severity: SeverityMajor,
				Subject:  subject,
				Detail:   fmt.Sprintf("%s requires a %s object but %s is not one", stmt.Relation.Name, constraint.Range, object),
				First:    first,
				Second:   second,
			}, true
		}
	}
	return Conflict{}, false
}

// DetectAllConflicts groups statements by subject and runs every unordered
// pair within each group through DetectConflict, collecting all hits.
// Quadratic within a group; per-subject statement counts are expected to
// stay in the tens.
func (r *Reasoner) DetectAllConflicts(statements []types.Statement) []Conflict {
	groups := make(map[string][]types.Statement)
	var order []string
	for _, stmt := range statements {
		subject := stmt.Subject.Text()
		if subject == "" {
			continue
		}
		if _, ok := groups[subject]; !ok {
			order = append(order, subject)
		}
		groups[subject] = append(groups[subject], stmt)
	}

	var conflicts []Conflict
	for _, subject := range order {
		group := groups[subject]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if c, ok := r.DetectConflict(group[i], group[j]); ok {
					conflicts = append(conflicts, c)
				}
			}
		}
	}

	if len(conflicts) > 0 {
		r.logger.Info("semantic conflicts detected", zap.Int("count", len(conflicts)))
	}
	return conflicts
}
