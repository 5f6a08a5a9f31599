package symcalc

import (
	"fmt"
	"math"
)

// varCell is the shared, named scalar cell a Variable is a handle to.
// Copying a Variable by value copies the *varCell pointer, giving another
// handle to the same cell — Go's ordinary pointer/GC semantics stand in
// for the source's manual reference counting (spec.md §3, "reference
// counted under the hood").
type varCell struct {
	ctx   *Context
	id    uint64
	value float64
	name  string
	node  *node
}

// Variable is a named, mutable scalar cell that can appear as a leaf in
// expressions. The zero Variable is not usable; construct one with
// NewVariable or NamedVariable.
type Variable struct {
	cell *varCell
}

// NewVariable creates an unnamed variable (a stable default label is
// synthesised on first use of Name) initialised to 0 in DefaultContext.
func NewVariable() Variable {
	return DefaultContext.NewVariable("", 0)
}

// NamedVariable creates a named variable initialised to 0 in
// DefaultContext.
func NamedVariable(name string) Variable {
	return DefaultContext.NewVariable(name, 0)
}

// NamedVariableWithValue creates a named variable initialised to v in
// DefaultContext.
func NamedVariableWithValue(name string, v float64) Variable {
	return DefaultContext.NewVariable(name, v)
}

// NewVariable creates a variable bound to this Context, mirroring the
// source's Variable(char const* = nullptr, double = 0) constructor.
func (c *Context) NewVariable(name string, v float64) Variable {
	cell := &varCell{ctx: c, id: c.nextVariableID(), value: v, name: name}
	cell.node = c.variableNode(cell)
	return Variable{cell: cell}
}

// Value returns the variable's current numeric value.
func (v Variable) Value() float64 {
	return v.cell.value
}

// Set assigns a new value to the variable and bumps its Context's
// dirty-level counter, invalidating every memoised evaluation and
// derivative that depends on it. Non-finite inputs are a precondition
// violation (spec.md §7.2) and are rejected with an error rather than
// silently accepted.
func (v Variable) Set(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("symcalc: variable %q: non-finite assignment %v", v.Name(), value)
	}
	v.cell.value = value
	v.cell.ctx.Touch()
	return nil
}

// Name returns the variable's display name, synthesising and caching a
// stable default (e.g. "$3") on first call if none was given at
// construction — the Go-idiomatic analogue of the source's
// address-derived default label.
func (v Variable) Name() string {
	if v.cell.name == "" {
		v.cell.name = v.cell.ctx.nextAnonName()
	}
	return v.cell.name
}

// SetName overrides the variable's display name.
func (v Variable) SetName(name string) {
	v.cell.name = name
}

// Is reports whether v and other are handles to the same underlying cell.
func (v Variable) Is(other Variable) bool {
	return v.cell == other.cell
}

// Expr returns the Expression wrapping this variable as a leaf node.
func (v Variable) Expr() Expression {
	return Expression{n: v.cell.node, ctx: v.cell.ctx}
}

// Sign is the source's `std::sign` free helper (Laskenta.h): +1, -1 or 0
// according to the sign of x, without building an Expression.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
