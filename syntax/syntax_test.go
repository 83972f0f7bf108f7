package syntax_test

import (
	"testing"

	"github.com/defuture-io/defuture/syntax"
	"github.com/defuture-io/defuture/token"
	"github.com/google/go-cmp/cmp"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.IDENT, Lexeme: name, Line: 1}
}

// (call (access (var worker) executeBlocking) (lambda (h) (call (access (var h) complete) (var r))))
func sampleCall() *syntax.Call {
	return &syntax.Call{
		Fn: &syntax.Access{Receiver: &syntax.Var{Name: ident("worker")}, Name: ident("executeBlocking")},
		Args: []syntax.Node{
			&syntax.Lambda{
				Params: []token.Token{ident("h")},
				Body: &syntax.Call{
					Fn:   &syntax.Access{Receiver: &syntax.Var{Name: ident("h")}, Name: ident("complete")},
					Args: []syntax.Node{&syntax.Var{Name: ident("r")}},
				},
			},
		},
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		node     syntax.Node
		expected string
	}{
		{&syntax.Var{Name: ident("x")}, "(var x)"},
		{&syntax.Lambda{Body: &syntax.Var{Name: ident("x")}}, "(lambda () (var x))"},
		{&syntax.Block{}, "(block)"},
		{&syntax.Return{Value: &syntax.Var{Name: ident("r")}}, "(return (var r))"},
		{&syntax.Throw{Value: &syntax.Var{Name: ident("e")}}, "(throw (var e))"},
		{
			&syntax.If{Cond: &syntax.Var{Name: ident("c")}, Then: &syntax.Block{}},
			"(if (var c) (block))",
		},
		{
			sampleCall(),
			"(call (access (var worker) executeBlocking) (lambda (h) (call (access (var h) complete) (var r))))",
		},
	}
	for _, testcase := range testcases {
		if got := testcase.node.String(); got != testcase.expected {
			t.Errorf("String() = %q, expected %q", got, testcase.expected)
		}
	}
}

func TestUniverseVisitsChildrenFirst(t *testing.T) {
	t.Parallel()
	call := sampleCall()
	nodes := syntax.Universe(call)

	if len(nodes) == 0 {
		t.Fatalf("Universe returned no nodes")
	}
	last, ok := nodes[len(nodes)-1].(*syntax.Call)
	if !ok {
		t.Fatalf("last node is %T, expected the root *syntax.Call", nodes[len(nodes)-1])
	}
	if last.String() != call.String() {
		t.Errorf("last node is not the root")
	}

	vars := 0
	for _, n := range nodes {
		if _, ok := n.(*syntax.Var); ok {
			vars++
		}
	}
	if vars != 3 {
		t.Errorf("Universe found %d vars, expected 3", vars)
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()
	call := sampleCall()
	children := syntax.Children(call)
	if len(children) != 2 {
		t.Fatalf("Children returned %d nodes, expected 2", len(children))
	}
	if _, ok := children[0].(*syntax.Access); !ok {
		t.Errorf("child 0 is %T, expected *syntax.Access", children[0])
	}
	if _, ok := children[1].(*syntax.Lambda); !ok {
		t.Errorf("child 1 is %T, expected *syntax.Lambda", children[1])
	}
}

func TestTraverseIsPersistent(t *testing.T) {
	t.Parallel()
	call := sampleCall()
	before := call.String()

	rebuilt, err := syntax.Traverse(call, func(n syntax.Node, err error) (syntax.Node, error) {
		if v, ok := n.(*syntax.Var); ok && v.Name.Lexeme == "r" {
			return &syntax.Var{Name: ident("value")}, err
		}
		return n, err
	})
	if err != nil {
		t.Fatalf("Traverse returned error: %v", err)
	}

	if diff := cmp.Diff(before, call.String()); diff != "" {
		t.Errorf("Traverse mutated the input tree (-want +got):\n%s", diff)
	}
	expected := "(call (access (var worker) executeBlocking) (lambda (h) (call (access (var h) complete) (var value))))"
	if diff := cmp.Diff(expected, rebuilt.String()); diff != "" {
		t.Errorf("Traverse result mismatch (-want +got):\n%s", diff)
	}
}
