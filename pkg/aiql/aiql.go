// Package aiql is the public shim for the aiql-core reasoning engine,
// re-exporting the types and constructors external callers need without
// violating Go's internal package encapsulation. The front-end parser builds
// the types exported here; renderers consume the result types.
package aiql

import (
	"github.com/aiql-org/aiql-core/internal/config"
	"github.com/aiql-org/aiql-core/internal/logging"
	"github.com/aiql-org/aiql-core/internal/logic"
	"github.com/aiql-org/aiql-core/internal/ontology"
	"github.com/aiql-org/aiql-core/internal/types"
)

// Data model.
type (
	Node         = types.Node
	Intent       = types.Intent
	IntentKind   = types.IntentKind
	Compound     = types.Compound
	Operator     = types.Operator
	Quantified   = types.Quantified
	Quantifier   = types.Quantifier
	Rule         = types.Rule
	Relationship = types.Relationship
	Statement    = types.Statement
	Relation     = types.Relation
	Term         = types.Term
	Concept      = types.Concept
	Variable     = types.Variable
	Literal      = types.Literal
	Opaque       = types.Opaque
)

const (
	IntentAssert = types.IntentAssert
	IntentQuery  = types.IntentQuery
	IntentDefine = types.IntentDefine
	IntentTask   = types.IntentTask

	OpAnd     = types.OpAnd
	OpOr      = types.OpOr
	OpNot     = types.OpNot
	OpImplies = types.OpImplies
	OpIff     = types.OpIff
)

var (
	Assert        = types.Assert
	Not           = types.Not
	Implies       = types.Implies
	And           = types.And
	Or            = types.Or
	ParseOperator = types.ParseOperator
	Equal         = types.Equal
)

// Chaining engine.
type (
	KnowledgeBase     = logic.KnowledgeBase
	Bindings          = logic.Bindings
	ForwardResult     = logic.ForwardResult
	Proof             = logic.Proof
	ProveResult       = logic.ProveResult
	ConsistencyResult = logic.ConsistencyResult
	Contradiction     = logic.Contradiction
)

var (
	NewKnowledgeBase  = logic.NewKnowledgeBase
	Unify             = logic.Unify
	WithLogger        = logic.WithLogger
	WithMaxProofDepth = logic.WithMaxProofDepth
)

// Ontology reasoner.
type (
	Reasoner      = ontology.Reasoner
	Constraint    = ontology.Constraint
	Cardinality   = ontology.Cardinality
	Conflict      = ontology.Conflict
	ConflictType  = ontology.ConflictType
	Severity      = ontology.Severity
	ClosureResult = ontology.ClosureResult
)

const (
	CardinalityOne  = ontology.CardinalityOne
	CardinalityMany = ontology.CardinalityMany

	ConflictTaxonomy    = ontology.ConflictTaxonomy
	ConflictCardinality = ontology.ConflictCardinality
	ConflictDisjoint    = ontology.ConflictDisjoint
	ConflictTypeCheck   = ontology.ConflictTypeCheck

	SeverityCritical = ontology.SeverityCritical
	SeverityMajor    = ontology.SeverityMajor
)

var (
	NewReasoner              = ontology.NewReasoner
	WithReasonerLogger       = ontology.WithLogger
	WithMaxClosureIterations = ontology.WithMaxClosureIterations
)

// Config and logging.
type Config = config.Config

var (
	DefaultConfig = config.Default
	LoadConfig    = config.Load
	NewLogger     = logging.New
)
