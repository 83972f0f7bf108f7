package rewrite

import "github.com/defuture-io/defuture/syntax"

// Operation returns the name a call invokes: the identifier itself for
// a plain call, or the member name for a call on a receiver.
func Operation(call *syntax.Call) (string, bool) {
	switch fn := call.Fn.(type) {
	case *syntax.Var:
		return fn.Name.Lexeme, true
	case *syntax.Access:
		return fn.Name.Lexeme, true
	}

	return "", false
}

// Match returns the first rule whose operation name equals the call's
// operation name and whose first argument is a lambda. Exactly one
// argument position is inspected; a call with no arguments or a
// non-lambda first argument never matches.
func Match(call *syntax.Call, rules []Rule) (Rule, bool) {
	name, ok := Operation(call)
	if !ok {
		return Rule{}, false
	}
	if len(call.Args) == 0 {
		return Rule{}, false
	}
	if _, ok := call.Args[0].(*syntax.Lambda); !ok {
		return Rule{}, false
	}
	for _, rule := range rules {
		if rule.Operation == name {
			return rule, true
		}
	}

	return Rule{}, false
}
