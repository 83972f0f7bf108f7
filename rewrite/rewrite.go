package rewrite

import "github.com/defuture-io/defuture/syntax"

// Outcome is the terminal state of one call after a pass:
// Unmatched (no rule applied), Declined (a rule matched but a
// precondition failed, the call is untouched), or Rewritten.
type Outcome int

const (
	Unmatched Outcome = iota
	Declined
	Rewritten
)

var outcomeNames = [...]string{
	Unmatched: "unmatched",
	Declined:  "declined",
	Rewritten: "rewritten",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return "unknown"
}

// Result pairs the returned call with its outcome. For Unmatched and
// Declined, Call is the input value itself, so the host performs no
// substitution.
type Result struct {
	Call    *syntax.Call
	Outcome Outcome
}

// Apply evaluates one call against the rule set. Unmet preconditions
// are never errors: the call is returned unchanged.
func Apply(call *syntax.Call, rules []Rule) Result {
	rule, ok := Match(call, rules)
	if !ok {
		return Result{Call: call, Outcome: Unmatched}
	}

	lam := call.Args[0].(*syntax.Lambda)
	var newLam *syntax.Lambda
	changed := false
	switch rule.Strategy {
	case Supplier:
		newLam, changed = supplier(lam)
	case Callable:
		newLam, changed = callable(rule, lam)
	}
	if !changed {
		return Result{Call: call, Outcome: Declined}
	}

	return Result{Call: reconstruct(call, newLam), Outcome: Rewritten}
}

// reconstruct builds the replacement call: same operation, same
// receiver, with only the lambda argument position replaced. Sibling
// arguments keep their exact subtrees.
func reconstruct(call *syntax.Call, lam *syntax.Lambda) *syntax.Call {
	args := make([]syntax.Node, len(call.Args))
	copy(args, call.Args)
	args[0] = lam

	return &syntax.Call{Fn: call.Fn, Args: args}
}
