package logic

import (
	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// ForwardResult reports one forward-chaining run. Exhausted distinguishes
// "ran out of iterations" from a true fixpoint.
type ForwardResult struct {
	Derived    []types.Node
	Iterations int
	Exhausted  bool
}

// implication is the normalized premise=>conclusion view a pattern rule works
// against. Compound implies/iff nodes and Rule nodes all project into it.
type implication struct {
	premise    types.Node
	conclusion types.Node
}

// ForwardChain repeatedly applies the inference battery (modus ponens, modus
// tollens, hypothetical syllogism, disjunctive syllogism, conjunction
// elimination) until a full pass derives nothing new or maxIterations passes
// have run. Derived nodes are appended to the knowledge base; structural
// de-duplication is what keeps self-referential input such as "A implies A"
// from spinning.
func (kb *KnowledgeBase) ForwardChain(maxIterations int) ForwardResult {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	var result ForwardResult
	for iteration := 0; iteration < maxIterations; iteration++ {
		result.Iterations = iteration + 1
		added := kb.forwardPass(&result)
		if added == 0 {
			kb.logger.Debug("forward chain reached fixpoint",
				zap.Int("iterations", result.Iterations),
				zap.Int("derived", len(result.Derived)))
			return result
		}
	}

	result.Exhausted = true
	kb.logger.Warn("forward chain exhausted iteration bound",
		zap.Int("iterations", result.Iterations),
		zap.Int("derived", len(result.Derived)))
	return result
}

// forwardPass applies every pattern against a snapshot of the current
// knowledge base and appends what is new. Returns the number of nodes added.
func (kb *KnowledgeBase) forwardPass(result *ForwardResult) int {
	snapshot := kb.nodes
	added := 0

	derive := func(n types.Node) {
		if kb.Add(n) {
			result.Derived = append(result.Derived, n)
			added++
		}
	}

	implications := collectImplications(snapshot)

	// Modus ponens and modus tollens over every implication.
	for _, imp := range implications {
		if kb.Contains(imp.premise) {
			derive(imp.conclusion)
		}
		if kb.Contains(types.Not(imp.conclusion)) {
			derive(types.Not(imp.premise))
		}
	}

	// Hypothetical syllogism: implies(A,B) + implies(B,C) => implies(A,C).
	for _, first := range implications {
		for _, second := range implications {
			if types.Equal(first.conclusion, second.premise) &&
				!types.Equal(first.premise, second.conclusion) {
				derive(types.Implies(first.premise, second.conclusion))
			}
		}
	}

	// Disjunctive syllogism and conjunction elimination.
	for _, n := range snapshot {
		compound, ok := n.(*types.Compound)
		if !ok {
			continue
		}
		switch compound.Op {
		case types.OpOr:
			if kb.Contains(types.Not(compound.Left)) {
				derive(compound.Right)
			}
			if kb.Contains(types.Not(compound.Right)) {
				derive(compound.Left)
			}
		case types.OpAnd:
			derive(compound.Left)
			derive(compound.Right)
		}
	}

	return added
}

// collectImplications projects implication-shaped nodes out of the knowledge
// base. Rules contribute premises=>conclusion, bidirectional rules and iff
// compounds both directions. Anything else is inert here.
func collectImplications(nodes []types.Node) []implication {
	var out []implication
	for _, n := range nodes {
		switch v := n.(type) {
		case *types.Compound:
			switch v.Op {
			case types.OpImplies:
				if v.Left != nil && v.Right != nil {
					out = append(out, implication{premise: v.Left, conclusion: v.Right})
				}
			case types.OpIff:
				if v.Left != nil && v.Right != nil {
					out = append(out,
						implication{premise: v.Left, conclusion: v.Right},
						implication{premise: v.Right, conclusion: v.Left})
				}
			}
		case *types.Rule:
			if v.Premises == nil || v.Conclusion == nil {
				continue
			}
			out = append(out, implication{premise: v.Premises, conclusion: v.Conclusion})
			if v.Bidirectional {
				out = append(out, implication{premise: v.Conclusion, conclusion: v.Premises})
			}
		}
	}
	return out
}
