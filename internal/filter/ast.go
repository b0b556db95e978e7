package filter

import (
	"strings"

	"github.com/qscaffold/qscaffold/internal/answers"
)

// Expr is a compiled boolean expression over an answer set.
type Expr interface {
	// Eval reports whether the expression holds for a.
	Eval(a answers.Set) bool
	// String renders the expression in source form.
	String() string
}

// operand is anything that can sit on either side of a comparison.
type operand interface {
	Expr
	resolve(a answers.Set) answers.Value
}

// Ref references an answer by key path. A single segment is the truthiness of
// the answer; two segments test membership in a multi-select answer.
type Ref struct {
	Path []string
}

func (r Ref) resolve(a answers.Set) answers.Value { return a.Lookup(r.Path...) }

// Eval implements Expr.
func (r Ref) Eval(a answers.Set) bool { return r.resolve(a).Truthy() }

func (r Ref) String() string { return strings.Join(r.Path, ".") }

// Literal is a quoted string or a true/false constant.
type Literal struct {
	Value answers.Value
}

func (l Literal) resolve(answers.Set) answers.Value { return l.Value }

// Eval implements Expr.
func (l Literal) Eval(answers.Set) bool { return l.Value.Truthy() }

func (l Literal) String() string { return l.Value.GoString() }

// Compare tests two operands for equality, or inequality when Negate is set.
type Compare struct {
	Left, Right operand
	Negate      bool
}

// Eval implements Expr. Absent never equals anything, and flag sets never
// equal a literal.
func (c Compare) Eval(a answers.Set) bool {
	l, r := c.Left.resolve(a), c.Right.resolve(a)
	eq := !l.IsAbsent() && !r.IsAbsent() &&
		l.Kind() != answers.KindFlags && r.Kind() != answers.KindFlags &&
		l.Equal(r)
	return eq != c.Negate
}

func (c Compare) String() string {
	op := " === "
	if c.Negate {
		op = " !== "
	}
	return c.Left.String() + op + c.Right.String()
}

// Not negates its operand.
type Not struct {
	X Expr
}

// Eval implements Expr.
func (n Not) Eval(a answers.Set) bool { return !n.X.Eval(a) }

func (n Not) String() string {
	switch n.X.(type) {
	case And, Or, Compare:
		return "!(" + n.X.String() + ")"
	}
	return "!" + n.X.String()
}

// And is short-circuit conjunction.
type And struct {
	L, R Expr
}

// Eval implements Expr.
func (e And) Eval(a answers.Set) bool { return e.L.Eval(a) && e.R.Eval(a) }

func (e And) String() string { return wrapOr(e.L) + " && " + wrapOr(e.R) }

// Or is short-circuit disjunction.
type Or struct {
	L, R Expr
}

// Eval implements Expr.
func (e Or) Eval(a answers.Set) bool { return e.L.Eval(a) || e.R.Eval(a) }

func (e Or) String() string { return e.L.String() + " || " + e.R.String() }

func wrapOr(e Expr) string {
	if _, ok := e.(Or); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// Always is the expression that holds for every answer set.
var Always Expr = Literal{Value: answers.Bool(true)}
