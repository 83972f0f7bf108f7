package rewrite

import "github.com/defuture-io/defuture/syntax"

// supplier drops the lambda's single parameter when the body never
// references it. The body is shared, not copied: nothing mutates nodes,
// so sharing is safe.
func supplier(lam *syntax.Lambda) (*syntax.Lambda, bool) {
	if len(lam.Params) != 1 {
		return lam, false
	}
	if Uses(lam.Body, lam.Params[0].Lexeme) {
		return lam, false
	}

	return &syntax.Lambda{Body: lam.Body}, true
}

// callable converts a single-parameter handle lambda into a
// zero-parameter lambda that returns or throws directly. The two body
// shapes are handled separately:
//
//   - expression body: the body must be handle.complete(value) itself;
//     the new body is value, verbatim.
//   - block body: only top-level statements are inspected. Each
//     handle.complete(v) becomes return v and each handle.fail(e)
//     becomes throw e; every other statement is kept in position.
//     Completion calls nested inside conditionals or loops are left
//     alone, so a block with no top-level completion is not rewritten.
func callable(rule Rule, lam *syntax.Lambda) (*syntax.Lambda, bool) {
	if len(lam.Params) != 1 {
		return lam, false
	}
	handle := lam.Params[0].Lexeme

	block, ok := lam.Body.(*syntax.Block)
	if !ok {
		value, ok := handleCall(lam.Body, handle, rule.Complete)
		if !ok {
			return lam, false
		}

		return &syntax.Lambda{Body: value}, true
	}

	stmts := make([]syntax.Node, len(block.Stmts))
	changed := false
	for i, stmt := range block.Stmts {
		if value, ok := handleCall(stmt, handle, rule.Complete); ok {
			stmts[i] = &syntax.Return{Value: value}
			changed = true
		} else if value, ok := handleCall(stmt, handle, rule.Fail); ok {
			stmts[i] = &syntax.Throw{Value: value}
			changed = true
		} else {
			stmts[i] = stmt
		}
	}
	if !changed {
		return lam, false
	}

	return &syntax.Lambda{Body: &syntax.Block{Stmts: stmts}}, true
}

// handleCall recognizes handle.method(arg) with exactly one argument
// and returns that argument.
func handleCall(n syntax.Node, handle, method string) (syntax.Node, bool) {
	call, ok := n.(*syntax.Call)
	if !ok || len(call.Args) != 1 {
		return nil, false
	}
	access, ok := call.Fn.(*syntax.Access)
	if !ok || access.Name.Lexeme != method {
		return nil, false
	}
	receiver, ok := access.Receiver.(*syntax.Var)
	if !ok || receiver.Name.Lexeme != handle {
		return nil, false
	}

	return call.Args[0], true
}
