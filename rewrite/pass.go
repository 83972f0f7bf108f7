package rewrite

import "github.com/defuture-io/defuture/syntax"

// maxSweeps caps the fixed-point loop. Rewritten lambdas have zero
// parameters and can never match again, so the loop converges long
// before this; the cap guards against a future rule that oscillates.
const maxSweeps = 100

// Rewriter is the host-side pass that sweeps whole trees with a rule
// set until no call changes. It holds only the immutable rule
// configuration, so one Rewriter may serve many goroutines.
type Rewriter struct {
	rules []Rule
}

func NewRewriter(rules []Rule) *Rewriter {
	return &Rewriter{rules: rules}
}

func (r *Rewriter) Name() string {
	return "rewrite.Rewriter"
}

func (r *Rewriter) Init([]syntax.Node) error {
	return Validate(r.rules)
}

func (r *Rewriter) Run(program []syntax.Node) ([]syntax.Node, error) {
	result := make([]syntax.Node, len(program))
	for i, n := range program {
		result[i] = r.fixedPoint(n)
	}

	return result, nil
}

// Sweep applies the rule set to every call in the tree, children
// before parents. Each call is visited exactly once per sweep. It
// returns the rebuilt tree and the number of calls rewritten.
func (r *Rewriter) Sweep(n syntax.Node) (syntax.Node, int) {
	rewritten := 0
	n, _ = syntax.Traverse(n, func(n syntax.Node, _ error) (syntax.Node, error) {
		call, ok := n.(*syntax.Call)
		if !ok {
			return n, nil
		}
		result := Apply(call, r.rules)
		if result.Outcome == Rewritten {
			rewritten++
		}

		return result.Call, nil
	})

	return n, rewritten
}

func (r *Rewriter) fixedPoint(n syntax.Node) syntax.Node {
	for i := 0; i < maxSweeps; i++ {
		next, rewritten := r.Sweep(n)
		n = next
		if rewritten == 0 {
			break
		}
	}

	return n
}
