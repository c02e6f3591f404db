// Package ontology implements the class/instance reasoner: hierarchy
// learning from is_a/subclass_of/instance_of statements, transitive closure
// over the hierarchy, property constraints, and pairwise semantic conflict
// detection between statements sharing a subject.
//
// The reasoner is independent of the chaining engine; the two are typically
// run side by side over the same statement set but neither calls the other.
package ontology

import (
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// DefaultMaxClosureIterations bounds transitive closure so a cyclic
// hierarchy terminates instead of spinning. A cycle may leave the closure
// incomplete; real ontologies are acyclic by convention.
const DefaultMaxClosureIterations = 100

// Hierarchy relations. Statements with these relation names feed
// LearnHierarchy.
const (
	RelationIsA        = "is_a"
	RelationSubclassOf = "subclass_of"
	RelationInstanceOf = "instance_of"
)

// Reasoner owns the hierarchy map (concept -> superclass set), instance map
// (instance -> class set), property constraint table, and disjoint-class
// registry. Single-threaded; state is rebuilt from scratch on each
// LearnHierarchy call.
type Reasoner struct {
	hierarchy map[string]map[string]struct{}
	instances map[string]map[string]struct{}

	constraints map[string]Constraint
	disjoint    map[[2]string]struct{}

	maxClosureIterations int
	logger               *zap.Logger
}

// ReasonerOption configures a Reasoner.
type ReasonerOption func(*Reasoner)

// WithLogger attaches a zap logger.
func WithLogger(logger *zap.Logger) ReasonerOption {
	return func(r *Reasoner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxClosureIterations overrides the closure iteration cap. Values <= 0
// keep the default.
func WithMaxClosureIterations(n int) ReasonerOption {
	return func(r *Reasoner) {
		if n > 0 {
			r.maxClosureIterations = n
		}
	}
}

// NewReasoner builds a reasoner seeded with the embedded common-sense
// constraints and disjoint category pairs.
func NewReasoner(opts ...ReasonerOption) *Reasoner {
	r := &Reasoner{
		hierarchy:            make(map[string]map[string]struct{}),
		instances:            make(map[string]map[string]struct{}),
		constraints:          make(map[string]Constraint),
		disjoint:             make(map[[2]string]struct{}),
		maxClosureIterations: DefaultMaxClosureIterations,
		logger:               zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	// defaults.yaml is compiled in; a parse failure here is a build defect.
	cf, err := parseConstraintFile(defaultsYAML)
	if err != nil {
		panic(err)
	}
	r.applyConstraintFile(cf)
	return r
}

// ClosureResult reports a LearnHierarchy run. Exhausted is true when the
// iteration cap was hit before the closure stabilized (cyclic input).
type ClosureResult struct {
	Concepts   int
	Instances  int
	Iterations int
	Exhausted  bool
}

// LearnHierarchy rebuilds the hierarchy and instance maps from the given
// statements and computes the transitive closure of the superclass relation.
// Previous hierarchy state is discarded, which makes repeated calls over the
// same statement set idempotent.
func (r *Reasoner) LearnHierarchy(statements []types.Statement) ClosureResult {
	r.hierarchy = make(map[string]map[string]struct{})
	r.instances = make(map[string]map[string]struct{})

	for _, stmt := range statements {
		subject := stmt.Subject.Text()
		object := stmt.Object.Text()
		if subject == "" || object == "" {
			continue
		}
		switch stmt.Relation.Name {
		case RelationIsA, RelationSubclassOf:
			addToSet(r.hierarchy, subject, object)
		case RelationInstanceOf:
			addToSet(r.instances, subject, object)
		}
	}

	result := r.closeHierarchy()
	result.Concepts = len(r.hierarchy)
	result.Instances = len(r.instances)
	r.logger.Debug("hierarchy learned",
		zap.Int("concepts", result.Concepts),
		zap.Int("instances", result.Instances),
		zap.Int("iterations", result.Iterations),
		zap.Bool("exhausted", result.Exhausted))
	return result
}

// closeHierarchy unions each concept's indirect superclasses into its set
// until no set grows in a full pass or the iteration cap is hit.
func (r *Reasoner) closeHierarchy() ClosureResult {
	var result ClosureResult
	for iteration := 0; iteration < r.maxClosureIterations; iteration++ {
		result.Iterations = iteration + 1
		grew := false
		for concept, supers := range r.hierarchy {
			// Snapshot before unioning so a pass never chases edges it
			// added itself; each pass advances the frontier by one hop.
			direct := lo.Keys(supers)
			for _, super := range direct {
				for indirect := range r.hierarchy[super] {
					if indirect == concept {
						continue
					}
					if _, ok := supers[indirect]; !ok {
						supers[indirect] = struct{}{}
						grew = true
					}
				}
			}
		}
		if !grew {
			return result
		}
	}
	result.Exhausted = true
	return result
}

// IsSubclassOf reports whether a is a (possibly indirect) subclass of b.
// Reads the closed hierarchy; call LearnHierarchy first.
func (r *Reasoner) IsSubclassOf(a, b string) bool {
	if a == b {
		return false
	}
	_, ok := r.hierarchy[a][b]
	return ok
}

// IsInstanceOf reports whether an instance belongs to a class, either
// directly or transitively through any of its direct classes.
func (r *Reasoner) IsInstanceOf(instance, class string) bool {
	classes, ok := r.instances[instance]
	if !ok {
		return false
	}
	if _, direct := classes[class]; direct {
		return true
	}
	for direct := range classes {
		if r.IsSubclassOf(direct, class) {
			return true
		}
	}
	return false
}

// Superclasses returns the sorted transitive superclass set of a concept.
func (r *Reasoner) Superclasses(concept string) []string {
	supers := lo.Keys(r.hierarchy[concept])
	sort.Strings(supers)
	return supers
}

// ClassesOf returns the sorted direct class set of an instance.
func (r *Reasoner) ClassesOf(instance string) []string {
	classes := lo.Keys(r.instances[instance])
	sort.Strings(classes)
	return classes
}

// KnowsSubject reports whether the reasoner has any hierarchy or instance
// information about a name. Conflict checks that need class membership use
// this to stay quiet on subjects they know nothing about.
func (r *Reasoner) KnowsSubject(name string) bool {
	if _, ok := r.hierarchy[name]; ok {
		return true
	}
	_, ok := r.instances[name]
	return ok
}

func addToSet(m map[string]map[string]struct{}, key, member string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	set[member] = struct{}{}
}
