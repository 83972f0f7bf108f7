package driver

import (
	"fmt"

	"github.com/defuture-io/defuture/lexer"
	"github.com/defuture-io/defuture/parser"
	"github.com/defuture-io/defuture/syntax"
)

type Pass interface {
	Name() string
	Init([]syntax.Node) error
	Run([]syntax.Node) ([]syntax.Node, error)
}

type PassRunner struct {
	passes []Pass
}

func NewPassRunner() *PassRunner {
	return &PassRunner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current program.
func (r *PassRunner) Run(program []syntax.Node) ([]syntax.Node, error) {
	for _, pass := range r.passes {
		err := pass.Init(program)
		if err != nil {
			return program, fmt.Errorf("%s init: %w", pass.Name(), err)
		}
		program, err = pass.Run(program)
		if err != nil {
			return program, fmt.Errorf("%s run: %w", pass.Name(), err)
		}
	}

	return program, nil
}

// RunSource reads the tree notation and executes passes in order.
func (r *PassRunner) RunSource(source string) ([]syntax.Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	nodes, err := parser.NewParser(tokens).ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return r.Run(nodes)
}
