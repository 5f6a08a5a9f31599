package symcalc

import (
	"fmt"
	"math"
)

// applyUnary reconstructs a unary node of kind k around x through the
// algebra, so that substitution re-runs every peephole rewrite on the
// substituted subtree instead of building an unsimplified copy.
func (c *Context) applyUnary(k kind, x *node) *node {
	switch k {
	case kindAbs:
		return c.Abs(x)
	case kindSgn:
		return c.Sgn(x)
	case kindSqrt:
		return c.Sqrt(x)
	case kindCbrt:
		return c.Cbrt(x)
	case kindExp:
		return c.Exp(x)
	case kindExpm1:
		return c.Expm1(x)
	case kindLog:
		return c.Log(x)
	case kindLog1p:
		return c.Log1p(x)
	case kindSin:
		return c.Sin(x)
	case kindCos:
		return c.Cos(x)
	case kindTan:
		return c.Tan(x)
	case kindSec:
		return c.Sec(x)
	case kindAsin:
		return c.Asin(x)
	case kindAcos:
		return c.Acos(x)
	case kindAtan:
		return c.Atan(x)
	case kindSinh:
		return c.Sinh(x)
	case kindCosh:
		return c.Cosh(x)
	case kindTanh:
		return c.Tanh(x)
	case kindSech:
		return c.Sech(x)
	case kindAsinh:
		return c.Asinh(x)
	case kindAcosh:
		return c.Acosh(x)
	case kindAtanh:
		return c.Atanh(x)
	case kindErf:
		return c.Erf(x)
	case kindErfc:
		return c.Erfc(x)
	case kindInvert:
		return c.Invert(x)
	case kindNegate:
		return c.Negate(x)
	case kindSquare:
		return c.Square(x)
	case kindSoftpp:
		return c.Softpp(x)
	case kindSpence:
		return c.Spence(x)
	case kindXconic:
		return c.Xconic(x)
	case kindYconic:
		return c.Yconic(x)
	case kindZconic:
		return c.Zconic(x)
	default:
		return x
	}
}

func (c *Context) applyBinary(k kind, a, b *node) *node {
	switch k {
	case kindAdd:
		return c.Add(a, b)
	case kindMul:
		return c.Mul(a, b)
	case kindPow:
		return c.Pow(a, b)
	default:
		return a
	}
}

// subst recursively replaces VARIABLE leaves per mapping (keyed by
// variable id) and rebuilds composites through the algebra, so
// substitution is hash-consed and re-simplified (spec.md §4.6). memo
// bounds the work to one pass per distinct shared subnode within a
// single Bind/AtomicBind call.
func (c *Context) subst(n *node, mapping map[uint64]*node, memo map[*node]*node) *node {
	if r, ok := memo[n]; ok {
		return r
	}
	var result *node
	switch {
	case n.kind == kindVariable:
		if repl, ok := mapping[n.v.id]; ok {
			result = repl
		} else {
			result = n
		}
	case n.kind == kindConstant || n.kind == kindNaN:
		result = n
	case n.kind.isBinary():
		a := c.subst(n.a, mapping, memo)
		b := c.subst(n.b, mapping, memo)
		result = c.applyBinary(n.kind, a, b)
	default:
		a := c.subst(n.a, mapping, memo)
		result = c.applyUnary(n.kind, a)
	}
	memo[n] = result
	return result
}

// Bind replaces every occurrence of v with the constant value and
// returns the resulting (re-simplified, hash-consed) Expression.
func (e Expression) Bind(v Variable, value float64) Expression {
	mapping := map[uint64]*node{v.cell.id: e.ctx.constant(value)}
	return Expression{n: e.ctx.subst(e.n, mapping, map[*node]*node{}), ctx: e.ctx}
}

// AtomicBind replaces every variable key in mapping with its paired
// expression, all at once, and returns the resulting Expression. Unlike
// AtomicAssign this does not touch any variable's stored value — it
// builds a new expression.
func (e Expression) AtomicBind(mapping map[Variable]Expression) Expression {
	nodeMapping := make(map[uint64]*node, len(mapping))
	for v, expr := range mapping {
		nodeMapping[v.cell.id] = expr.n
	}
	return Expression{n: e.ctx.subst(e.n, nodeMapping, map[*node]*node{}), ctx: e.ctx}
}

// AtomicAssign evaluates every right-hand-side expression in mapping
// under the variables' values as they stand *before* any assignment,
// then writes all the resulting values to their left-hand-side
// variables. This is the design primitive for gradient-descent steps
// that must update many parameters in lockstep rather than from
// interleaved writes (spec.md §4.6, §8 scenario 6).
func AtomicAssign(mapping map[Variable]Expression) error {
	if len(mapping) == 0 {
		return nil
	}
	var ctx *Context
	type pending struct {
		cell *varCell
		v    float64
	}
	pairs := make([]pending, 0, len(mapping))
	for variable, expr := range mapping {
		if ctx == nil {
			ctx = variable.cell.ctx
		}
		if expr.ctx != ctx || variable.cell.ctx != ctx {
			return fmt.Errorf("symcalc: AtomicAssign: mapping spans more than one Context")
		}
		v := ctx.evaluate(expr.n)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("symcalc: AtomicAssign: non-finite result for %q", variable.Name())
		}
		pairs = append(pairs, pending{variable.cell, v})
	}
	for _, p := range pairs {
		p.cell.value = p.v
	}
	ctx.Touch()
	return nil
}
