package ontology

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Cardinality limits how many distinct values a relation may take per
// subject.
type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// Constraint describes the semantics of a relation. Domain and Range name
// the classes the relation's subject and object are expected to belong to;
// both are optional.
type Constraint struct {
	Cardinality  Cardinality `yaml:"cardinality"`
	Symmetric    bool        `yaml:"symmetric"`
	Transitive   bool        `yaml:"transitive"`
	DisjointWith []string    `yaml:"disjoint_with"`
	Domain       string      `yaml:"domain"`
	Range        string      `yaml:"range"`
}

// constraintFile is the YAML shape of defaults.yaml and caller-supplied
// constraint files.
type constraintFile struct {
	Constraints     map[string]Constraint `yaml:"constraints"`
	DisjointClasses [][2]string           `yaml:"disjoint_classes"`
}

func parseConstraintFile(data []byte) (*constraintFile, error) {
	var cf constraintFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse constraints: %w", err)
	}
	return &cf, nil
}

// RegisterConstraint adds or replaces the constraint for a relation.
func (r *Reasoner) RegisterConstraint(relation string, c Constraint) {
	if c.Cardinality == "" {
		c.Cardinality = CardinalityMany
	}
	r.constraints[relation] = c
}

// ConstraintFor returns the registered constraint for a relation.
func (r *Reasoner) ConstraintFor(relation string) (Constraint, bool) {
	c, ok := r.constraints[relation]
	return c, ok
}

// RegisterDisjointPair declares two classes mutually exclusive. The registry
// is symmetric; order does not matter.
func (r *Reasoner) RegisterDisjointPair(a, b string) {
	if a == "" || b == "" || a == b {
		return
	}
	r.disjoint[disjointKey(a, b)] = struct{}{}
}

// AreDisjoint reports whether two classes are registered as mutually
// exclusive.
func (r *Reasoner) AreDisjoint(a, b string) bool {
	_, ok := r.disjoint[disjointKey(a, b)]
	return ok
}

func disjointKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// LoadConstraints merges a YAML constraints file into the reasoner,
// replacing existing constraints for relations it names and adding its
// disjoint pairs.
func (r *Reasoner) LoadConstraints(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read constraints file %s: %w", path, err)
	}
	cf, err := parseConstraintFile(data)
	if err != nil {
		return err
	}
	r.applyConstraintFile(cf)
	return nil
}

func (r *Reasoner) applyConstraintFile(cf *constraintFile) {
	for relation, c := range cf.Constraints {
		r.RegisterConstraint(relation, c)
	}
	for _, pair := range cf.DisjointClasses {
		r.RegisterDisjointPair(pair[0], pair[1])
	}
}
