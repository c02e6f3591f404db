package logic

import (
	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// Contradiction is a pair of knowledge-base nodes where one is the direct
// negation of the other.
type Contradiction struct {
	Node    types.Node
	Negated types.Node // the not(...) wrapper coexisting with Node
}

// ConsistencyResult reports direct-contradiction checking. An inconsistent
// knowledge base is a reportable condition, not a fault: reasoning continues
// and the caller decides what to do.
type ConsistencyResult struct {
	Consistent     bool
	Contradictions []Contradiction
}

// CheckConsistency scans all pairs for a node X coexisting with not(X).
// Equality is structural, without variables; semantic-level conflicts are
// the ontology reasoner's job so the two failure domains stay separately
// reportable. O(n) over the knowledge base thanks to the key index.
func (kb *KnowledgeBase) CheckConsistency() ConsistencyResult {
	result := ConsistencyResult{Consistent: true}

	for _, n := range kb.nodes {
		negation, ok := n.(*types.Compound)
		if !ok || negation.Op != types.OpNot || negation.Left == nil {
			continue
		}
		if !kb.Contains(negation.Left) {
			continue
		}
		result.Contradictions = append(result.Contradictions, Contradiction{
			Node:    negation.Left,
			Negated: negation,
		})
	}

	if len(result.Contradictions) > 0 {
		result.Consistent = false
		kb.logger.Warn("knowledge base is inconsistent",
			zap.Int("contradictions", len(result.Contradictions)))
	}
	return result
}
