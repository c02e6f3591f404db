package logic

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aiql-org/aiql-core/internal/types"
)

// Justification labels a proof step.
const (
	JustificationFact        = "fact"
	JustificationModusPonens = "modus_ponens"
)

// Proof is a node in a proof tree: the goal it establishes, how it was
// established, the variable bindings of the match, and the sub-proofs for
// the premises of an applied rule. Leaf proofs have no premises.
type Proof struct {
	ID            string
	Goal          types.Node
	Justification string
	Rule          string // rule id or implication key; empty for leaves
	Bindings      Bindings
	Premises      []*Proof
}

// ProveResult is the convenience wrapper around BackwardChain. Proof is nil
// when the goal is not provable; there is no partial-credit outcome.
type ProveResult struct {
	Provable bool
	Proof    *Proof
}

// Prove wraps BackwardChain into a provable/proof pair.
func (kb *KnowledgeBase) Prove(goal types.Node) ProveResult {
	proof := kb.BackwardChain(goal)
	return ProveResult{Provable: proof != nil, Proof: proof}
}

// BackwardChain attempts a goal-directed, non-backtracking proof:
//
//  1. If the goal unifies with an existing node, return a leaf proof.
//  2. Otherwise look for a rule or implication whose conclusion unifies with
//     the goal and recursively prove its premise; success yields a
//     modus-ponens step combining the premise proof with the applied rule.
//  3. Otherwise return nil. Failure is total.
//
// Recursion is capped by the knowledge base's max proof depth so cyclic rule
// chains terminate.
func (kb *KnowledgeBase) BackwardChain(goal types.Node) *Proof {
	proof := kb.prove(goal, 0)
	if proof == nil {
		kb.logger.Debug("goal not provable", zap.String("goal", keyOf(goal)))
	}
	return proof
}

func (kb *KnowledgeBase) prove(goal types.Node, depth int) *Proof {
	if goal == nil || depth >= kb.maxProofDepth {
		return nil
	}

	// Direct match against the knowledge base.
	for _, n := range kb.nodes {
		if bindings, ok := Unify(goal, n); ok {
			return &Proof{
				ID:            uuid.NewString(),
				Goal:          goal,
				Justification: JustificationFact,
				Bindings:      bindings,
			}
		}
	}

	// Rule application: find an implication whose conclusion matches.
	for _, n := range kb.nodes {
		for _, step := range implicationSteps(n) {
			bindings, ok := Unify(goal, step.conclusion)
			if !ok {
				continue
			}
			premiseProof := kb.prove(step.premise, depth+1)
			if premiseProof == nil {
				continue
			}
			return &Proof{
				ID:            uuid.NewString(),
				Goal:          goal,
				Justification: JustificationModusPonens,
				Rule:          step.rule,
				Bindings:      bindings,
				Premises:      []*Proof{premiseProof},
			}
		}
	}

	return nil
}

// namedImplication pairs an implication with the identifier reported in
// proofs.
type namedImplication struct {
	premise    types.Node
	conclusion types.Node
	rule       string
}

func implicationSteps(n types.Node) []namedImplication {
	switch v := n.(type) {
	case *types.Compound:
		switch v.Op {
		case types.OpImplies:
			if v.Left != nil && v.Right != nil {
				return []namedImplication{{premise: v.Left, conclusion: v.Right, rule: v.Key()}}
			}
		case types.OpIff:
			if v.Left != nil && v.Right != nil {
				return []namedImplication{
					{premise: v.Left, conclusion: v.Right, rule: v.Key()},
					{premise: v.Right, conclusion: v.Left, rule: v.Key()},
				}
			}
		}
	case *types.Rule:
		if v.Premises == nil || v.Conclusion == nil {
			return nil
		}
		steps := []namedImplication{{premise: v.Premises, conclusion: v.Conclusion, rule: v.ID}}
		if v.Bidirectional {
			steps = append(steps, namedImplication{premise: v.Conclusion, conclusion: v.Premises, rule: v.ID})
		}
		return steps
	}
	return nil
}

func keyOf(n types.Node) string {
	if n == nil {
		return "_"
	}
	return n.Key()
}

// RenderASCII renders the proof tree as indented ASCII art, root first.
func (p *Proof) RenderASCII() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s [%s]\n", keyOf(p.Goal), p.label()))
	for i, premise := range p.Premises {
		renderProofASCII(&sb, premise, "", i == len(p.Premises)-1)
	}
	return sb.String()
}

func renderProofASCII(sb *strings.Builder, p *Proof, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	sb.WriteString(fmt.Sprintf("%s%s%s [%s]\n", prefix, connector, keyOf(p.Goal), p.label()))

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}
	for i, premise := range p.Premises {
		renderProofASCII(sb, premise, childPrefix, i == len(p.Premises)-1)
	}
}

func (p *Proof) label() string {
	if p.Rule == "" {
		return p.Justification
	}
	return fmt.Sprintf("%s:%s", p.Justification, p.Rule)
}

// RenderJSON renders the proof tree as indented JSON for external renderers.
func (p *Proof) RenderJSON() ([]byte, error) {
	type jsonProof struct {
		ID            string            `json:"id"`
		Goal          string            `json:"goal"`
		Justification string            `json:"justification"`
		Rule          string            `json:"rule,omitempty"`
		Bindings      map[string]string `json:"bindings,omitempty"`
		Premises      []*jsonProof      `json:"premises,omitempty"`
	}

	var convert func(*Proof) *jsonProof
	convert = func(n *Proof) *jsonProof {
		jn := &jsonProof{
			ID:            n.ID,
			Goal:          keyOf(n.Goal),
			Justification: n.Justification,
			Rule:          n.Rule,
			Bindings:      n.Bindings,
		}
		for _, premise := range n.Premises {
			jn.Premises = append(jn.Premises, convert(premise))
		}
		return jn
	}

	return json.MarshalIndent(convert(p), "", "  ")
}
