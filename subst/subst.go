// Package subst applies mechanical name-for-name substitutions:
// renaming a referenced identifier or member wherever it occurs.
// Unlike the rewrite package it never inspects lambda bodies or
// statement shapes.
package subst

import (
	"errors"
	"fmt"

	"github.com/defuture-io/defuture/syntax"
	"github.com/defuture-io/defuture/token"
)

// Rule renames every reference of From to To.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Subst is a driver pass that applies a fixed rename table.
type Subst struct {
	rules []Rule
	table map[string]string
}

func New(rules []Rule) *Subst {
	table := make(map[string]string, len(rules))
	for _, r := range rules {
		table[r.From] = r.To
	}

	return &Subst{rules: rules, table: table}
}

func (s *Subst) Name() string {
	return "subst.Subst"
}

type InvalidRenameError struct {
	Index int
}

func (e InvalidRenameError) Error() string {
	return fmt.Sprintf("rename %d: from and to must be non-empty", e.Index)
}

func (s *Subst) Init([]syntax.Node) error {
	var err error
	for i, r := range s.rules {
		if r.From == "" || r.To == "" {
			err = errors.Join(err, InvalidRenameError{Index: i})
		}
	}

	return err
}

func (s *Subst) Run(program []syntax.Node) ([]syntax.Node, error) {
	result := make([]syntax.Node, len(program))
	for i, n := range program {
		var err error
		result[i], err = syntax.Traverse(n, s.substEach)
		if err != nil {
			return program, err
		}
	}

	return result, nil
}

// substEach renames identifier references and member names. Binding
// positions (lambda parameters, let names) are left alone: the rename
// targets references to outside names, not local bindings.
func (s *Subst) substEach(n syntax.Node, err error) (syntax.Node, error) {
	if err != nil {
		return n, err
	}
	switch n := n.(type) {
	case *syntax.Var:
		if to, ok := s.table[n.Name.Lexeme]; ok {
			return &syntax.Var{Name: renamed(n.Name, to)}, nil
		}
	case *syntax.Access:
		if to, ok := s.table[n.Name.Lexeme]; ok {
			return &syntax.Access{Receiver: n.Receiver, Name: renamed(n.Name, to)}, nil
		}
	}

	return n, nil
}

func renamed(t token.Token, to string) token.Token {
	return token.Token{Kind: t.Kind, Lexeme: to, Line: t.Line}
}
