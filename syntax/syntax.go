// Package syntax defines the tree node model the rewriting engine
// operates on. Nodes are persistent: every rewrite builds new values
// that share unchanged subtrees, and no node is mutated after
// construction.
package syntax

import (
	"fmt"
	"strings"

	"github.com/defuture-io/defuture/token"
)

type Node interface {
	fmt.Stringer
	Base() token.Token
	// Plate applies the given function to each child node and returns
	// a fresh node built from the results. The receiver is never
	// modified. If f returns an error, f also must return the original
	// argument n.
	// FYI: https://hackage.haskell.org/package/lens-5.2.3/docs/Control-Lens-Plated.html
	Plate(error, func(Node, error) (Node, error)) (Node, error)
}

// Var is an identifier reference.
type Var struct {
	Name token.Token
}

func (v *Var) String() string {
	return parenthesize("var", v.Name).String()
}

func (v *Var) Base() token.Token {
	return v.Name
}

func (v *Var) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return v, err
}

var _ Node = &Var{}

// Literal is an integer or string constant.
type Literal struct {
	token.Token
}

func (l *Literal) String() string {
	return parenthesize("literal", l.Token).String()
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (l *Literal) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return l, err
}

var _ Node = &Literal{}

// Access is a member selection: receiver.name.
type Access struct {
	Receiver Node
	Name     token.Token
}

func (a *Access) String() string {
	return parenthesize("access", a.Receiver, a.Name).String()
}

func (a *Access) Base() token.Token {
	return a.Name
}

func (a *Access) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	receiver, err := f(a.Receiver, err)

	return &Access{Receiver: receiver, Name: a.Name}, err
}

var _ Node = &Access{}

// Call is an invocation. Fn is either a *Var (a plain operation name)
// or an *Access (an operation on a receiver). Argument order is
// significant and preserved by every rewrite.
type Call struct {
	Fn   Node
	Args []Node
}

func (c *Call) String() string {
	return parenthesize("call", c.Fn, concat(c.Args)).String()
}

func (c *Call) Base() token.Token {
	return c.Fn.Base()
}

func (c *Call) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	fn, err := f(c.Fn, err)
	args := make([]Node, len(c.Args))
	for i, arg := range c.Args {
		args[i], err = f(arg, err)
	}

	return &Call{Fn: fn, Args: args}, err
}

var _ Node = &Call{}

// Lambda is an anonymous function. Body is either a *Block or a single
// expression node. A Lambda with zero parameters is a valid terminal
// state.
type Lambda struct {
	Params []token.Token
	Body   Node
}

func (l *Lambda) String() string {
	return parenthesize("lambda", parenthesize("", concat(l.Params)), l.Body).String()
}

func (l *Lambda) Base() token.Token {
	if len(l.Params) > 0 {
		return l.Params[0]
	}

	return l.Body.Base()
}

func (l *Lambda) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	body, err := f(l.Body, err)

	return &Lambda{Params: l.Params, Body: body}, err
}

var _ Node = &Lambda{}

// Block is an ordered sequence of statements.
type Block struct {
	Stmts []Node
}

func (b *Block) String() string {
	return parenthesize("block", concat(b.Stmts)).String()
}

func (b *Block) Base() token.Token {
	if len(b.Stmts) == 0 {
		return token.Token{}
	}

	return b.Stmts[0].Base()
}

func (b *Block) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	stmts := make([]Node, len(b.Stmts))
	for i, stmt := range b.Stmts {
		stmts[i], err = f(stmt, err)
	}

	return &Block{Stmts: stmts}, err
}

var _ Node = &Block{}

// Let is a local binding statement. The engine treats it as opaque.
type Let struct {
	Name token.Token
	Expr Node
}

func (l *Let) String() string {
	return parenthesize("let", l.Name, l.Expr).String()
}

func (l *Let) Base() token.Token {
	return l.Name
}

func (l *Let) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	expr, err := f(l.Expr, err)

	return &Let{Name: l.Name, Expr: expr}, err
}

var _ Node = &Let{}

// Return yields a value from the enclosing lambda.
type Return struct {
	Value Node
}

func (r *Return) String() string {
	return parenthesize("return", r.Value).String()
}

func (r *Return) Base() token.Token {
	return r.Value.Base()
}

func (r *Return) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	value, err := f(r.Value, err)

	return &Return{Value: value}, err
}

var _ Node = &Return{}

// Throw raises an error from the enclosing lambda.
type Throw struct {
	Value Node
}

func (t *Throw) String() string {
	return parenthesize("throw", t.Value).String()
}

func (t *Throw) Base() token.Token {
	return t.Value.Base()
}

func (t *Throw) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	value, err := f(t.Value, err)

	return &Throw{Value: value}, err
}

var _ Node = &Throw{}

// If is a conditional statement. Else may be nil.
type If struct {
	Cond Node
	Then Node
	Else Node
}

func (i *If) String() string {
	if i.Else == nil {
		return parenthesize("if", i.Cond, i.Then).String()
	}

	return parenthesize("if", i.Cond, i.Then, i.Else).String()
}

func (i *If) Base() token.Token {
	return i.Cond.Base()
}

func (i *If) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	cond, err := f(i.Cond, err)
	then, err := f(i.Then, err)
	var els Node
	if i.Else != nil {
		els, err = f(i.Else, err)
	}

	return &If{Cond: cond, Then: then, Else: els}, err
}

var _ Node = &If{}

// Binary is an infix operation. The engine treats it as opaque.
type Binary struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b *Binary) String() string {
	return parenthesize("binary", b.Left, b.Op, b.Right).String()
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (b *Binary) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	left, err := f(b.Left, err)
	right, err := f(b.Right, err)

	return &Binary{Left: left, Op: b.Op, Right: right}, err
}

var _ Node = &Binary{}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")

	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for i, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}

	return &b
}
