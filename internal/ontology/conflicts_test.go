package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiql-org/aiql-core/internal/types"
)

func TestDetectConflictTaxonomy(t *testing.T) {
	r := NewReasoner()

	conflict, ok := r.DetectConflict(
		stmt("Rex", "is_a", "Mammal"),
		stmt("Rex", "is_a", "Reptile"),
	)
	require.True(t, ok)
	assert.Equal(t, ConflictTaxonomy, conflict.Type)
	assert.Equal(t, SeverityCritical, conflict.Severity)
	assert.Equal(t, "Rex", conflict.Subject)
	assert.Equal(t, "Mammal", conflict.First.Object.Text())
	assert.Equal(t, "Reptile", conflict.Second.Object.Text())
}

func TestDetectConflictTaxonomyInstanceOf(t *testing.T) {
	r := NewReasoner()
	_, ok := r.DetectConflict(
		stmt("Rock", "instance_of", "Solid"),
		stmt("Rock", "instance_of", "Liquid"),
	)
	assert.True(t, ok, "instance_of counts as a classifying relation")
}

func TestDetectConflictCardinality(t *testing.T) {
	r := NewReasoner()

	conflict, ok := r.DetectConflict(
		stmt("Coffee", "has_temperature", "Hot"),
		stmt("Coffee", "has_temperature", "Cold"),
	)
	require.True(t, ok)
	assert.Equal(t, ConflictCardinality, conflict.Type)
	assert.Equal(t, SeverityMajor, conflict.Severity)
}

func TestDetectConflictCardinalitySameValue(t *testing.T) {
	r := NewReasoner()
	_, ok := r.DetectConflict(
		stmt("Coffee", "has_temperature", "Hot"),
		stmt("Coffee", "has_temperature", "Hot"),
	)
	assert.False(t, ok, "restating the same value is not a conflict")
}

func TestDetectConflictDisjointProperties(t *testing.T) {
	r := NewReasoner()

	conflict, ok := r.DetectConflict(
		stmt("Schrodinger", "is_alive", "true"),
		stmt("Schrodinger", "is_dead", "true"),
	)
	require.True(t, ok)
	assert.Equal(t, ConflictDisjoint, conflict.Type)
	assert.Equal(t, SeverityCritical, conflict.Severity)
}

func TestDetectConflictDifferentSubjects(t *testing.T) {
	r := NewReasoner()
	_, ok := r.DetectConflict(
		stmt("Rex", "is_a", "Mammal"),
		stmt("Lizzy", "is_a", "Reptile"),
	)
	assert.False(t, ok, "conflict detection applies to shared subjects only")
}

func TestDetectConflictNoConstraint(t *testing.T) {
	r := NewReasoner()
	_, ok := r.DetectConflict(
		stmt("Rex", "likes", "Bones"),
		stmt("Rex", "likes", "Walks"),
	)
	assert.False(t, ok, "unconstrained relations can take many values")
}

func TestDetectConflictDomainRange(t *testing.T) {
	r := NewReasoner()
	r.RegisterConstraint("barks_at", Constraint{
		Cardinality: CardinalityMany,
		Domain:      "Dog",
	})
	r.LearnHierarchy([]types.Statement{
		stmt("Whiskers", "instance_of", "Cat"),
		stmt("Cat", "is_a", "Mammal"),
	})

	conflict, ok := r.DetectConflict(
		stmt("Whiskers", "barks_at", "Postman"),
		stmt("Whiskers", "barks_at", "Courier"),
	)
	require.True(t, ok, "a cat provably fails barks_at's Dog domain")
	assert.Equal(t, ConflictTypeCheck, conflict.Type)
	assert.Equal(t, SeverityMajor, conflict.Severity)
}

func TestDetectConflictDomainUnknownSubjectQuiet(t *testing.T) {
	r := NewReasoner()
	r.RegisterConstraint("barks_at", Constraint{Domain: "Dog"})

	_, ok := r.DetectConflict(
		stmt("Mystery", "barks_at", "Postman"),
		stmt("Mystery", "barks_at", "Courier"),
	)
	assert.False(t, ok, "no hierarchy knowledge about the subject means no type verdict")
}

func TestDetectConflictPriorityTaxonomyFirst(t *testing.T) {
	r := NewReasoner()
	// is_a also carries a constraint; the taxonomy check must win.
	conflict, ok := r.DetectConflict(
		stmt("Rex", "is_a", "Animal"),
		stmt("Rex", "is_a", "Plant"),
	)
	require.True(t, ok)
	assert.Equal(t, ConflictTaxonomy, conflict.Type)
}

func TestDetectAllConflicts(t *testing.T) {
	r := NewReasoner()

	conflicts := r.DetectAllConflicts([]types.Statement{
		stmt("Rex", "is_a", "Mammal"),
		stmt("Rex", "is_a", "Reptile"),
		stmt("Coffee", "has_temperature", "Hot"),
		stmt("Coffee", "has_temperature", "Cold"),
		stmt("Tea", "has_temperature", "Hot"), // alone in its group
	})

	require.Len(t, conflicts, 2)
	assert.Equal(t, ConflictTaxonomy, conflicts[0].Type)
	assert.Equal(t, ConflictCardinality, conflicts[1].Type)
}

func TestDetectAllConflictsEmpty(t *testing.T) {
	r := NewReasoner()
	assert.Empty(t, r.DetectAllConflicts(nil))
	assert.Empty(t, r.DetectAllConflicts([]types.Statement{
		stmt("Rex", "is_a", "Mammal"),
	}))
}

func TestDetectAllConflictsCarriesStatements(t *testing.T) {
	r := NewReasoner()
	first := stmt("Rex", "is_a", "Mammal")
	second := stmt("Rex", "is_a", "Bird")

	conflicts := r.DetectAllConflicts([]types.Statement{first, second})
	require.Len(t, conflicts, 1)
	assert.Equal(t, first, conflicts[0].First)
	assert.Equal(t, second, conflicts[0].Second)
	assert.NotEmpty(t, conflicts[0].Detail)
}
