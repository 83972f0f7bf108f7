package rewrite

import "github.com/defuture-io/defuture/syntax"

// Uses reports whether an identifier with the given name occurs
// anywhere in the body subtree, including nested blocks, conditionals,
// and nested lambdas. This is a syntactic name search: an inner binding
// that reintroduces the same name is not modeled, so a shadowed use
// still counts as a use.
func Uses(body syntax.Node, name string) bool {
	for _, n := range syntax.Universe(body) {
		if v, ok := n.(*syntax.Var); ok && v.Name.Lexeme == name {
			return true
		}
	}

	return false
}
