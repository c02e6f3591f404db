// Package logic implements the unification and chaining engine over the AIQL
// data model: structural unification with variable binding, forward chaining
// to a bounded fixpoint, backward chaining with proof trees, and direct
// contradiction checking.
package logic

import (
	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// Default bounds. Both loops must terminate regardless of cyclic or
// self-referential input, so every recursion and fixpoint carries a cap.
const (
	DefaultMaxIterations = 100
	DefaultMaxProofDepth = 50
)

// KnowledgeBase owns an ordered, append-only collection of logical nodes
// plus a de-duplication index keyed by each node's canonical key. Forward
// chaining only appends; nodes are never mutated in place.
//
// The knowledge base is single-writer, single-reader within one reasoning
// session; no locking, no goroutines, no I/O.
type KnowledgeBase struct {
	nodes []types.Node
	index map[string]struct{}

	maxProofDepth int
	logger        *zap.Logger
}

// Option configures a KnowledgeBase.
type Option func(*KnowledgeBase)

// WithLogger attaches a zap logger. Without it the knowledge base is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(kb *KnowledgeBase) {
		if logger != nil {
			kb.logger = logger
		}
	}
}

// WithMaxProofDepth caps backward-chaining recursion. Values <= 0 keep the
// default.
func WithMaxProofDepth(depth int) Option {
	return func(kb *KnowledgeBase) {
		if depth > 0 {
			kb.maxProofDepth = depth
		}
	}
}

// NewKnowledgeBase seeds a knowledge base from the parsed program body.
// Duplicate nodes in the seed are collapsed; nil nodes are skipped.
func NewKnowledgeBase(seed []types.Node, opts ...Option) *KnowledgeBase {
	kb := &KnowledgeBase{
		index:         make(map[string]struct{}, len(seed)),
		maxProofDepth: DefaultMaxProofDepth,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(kb)
	}
	for _, n := range seed {
		kb.Add(n)
	}
	return kb
}

// Add appends a node unless a structurally equal node is already present.
// Returns true if the node was new. Nil nodes are inert.
func (kb *KnowledgeBase) Add(n types.Node) bool {
	if n == nil {
		return false
	}
	key := n.Key()
	if _, ok := kb.index[key]; ok {
		return false
	}
	kb.index[key] = struct{}{}
	kb.nodes = append(kb.nodes, n)
	return true
}

// Contains reports whether a structurally equal node is present.
func (kb *KnowledgeBase) Contains(n types.Node) bool {
	if n == nil {
		return false
	}
	_, ok := kb.index[n.Key()]
	return ok
}

// Nodes returns the knowledge base contents in insertion order. The caller
// must not mutate the returned slice's nodes; it may re-render or inspect
// them freely.
func (kb *KnowledgeBase) Nodes() []types.Node {
	out := make([]types.Node, len(kb.nodes))
	copy(out, kb.nodes)
	return out
}

// Size returns the current node count.
func (kb *KnowledgeBase) Size() int { return len(kb.nodes) }

// Stats holds node counts by variant.
type Stats struct {
	Total         int `json:"total"`
	Intents       int `json:"intents"`
	Compounds     int `json:"compounds"`
	Quantified    int `json:"quantified"`
	Rules         int `json:"rules"`
	Relationships int `json:"relationships"`
}

// Stats returns node counts by variant.
func (kb *KnowledgeBase) Stats() Stats {
	s := Stats{Total: len(kb.nodes)}
	for _, n := range kb.nodes {
		switch n.(type) {
		case *types.Intent:
			s.Intents++
		case *types.Compound:
			s.Compounds++
		case *types.Quantified:
			s.Quantified++
		case *types.Rule:
			s.Rules++
		case *types.Relationship:
			s.Relationships++
		}
	}
	return s
}
