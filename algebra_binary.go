package symcalc

import "math"

// Add builds x + y. The two-phase dispatch spec.md §4.2 describes (LHS
// kind consulted first, RHS delegated to for anything the LHS doesn't
// handle) collapses here to explicit checks against both operands, since
// Go has no virtual method to hang the two phases off of — the effect is
// identical: simplification must not assume a canonical operand order,
// and every rule below is checked symmetrically.
func (c *Context) Add(x, y *node) *node {
	if x.isNaN() || y.isNaN() {
		return c.nanNode
	}
	if xv, ok := x.asConstant(); ok {
		if yv, ok2 := y.asConstant(); ok2 {
			return c.constant(xv + yv)
		}
	}
	if v, ok := x.asConstant(); ok && v == 0 {
		return y
	}
	if v, ok := y.asConstant(); ok && v == 0 {
		return x
	}
	// Re-associate deep ADD chains toward the shallower side so that
	// recursive traversal (evaluate, derive, print) stays bounded
	// instead of growing linearly with chain length (spec.md §4.2, §9).
	if x.kind == kindAdd && x.depth > c.assocLimit {
		return c.Add(x.a, c.Add(x.b, y))
	}
	if y.kind == kindAdd && y.depth > c.assocLimit {
		return c.Add(c.Add(x, y.a), y.b)
	}
	return c.binaryAddRaw(x, y)
}

// Mul builds x * y.
func (c *Context) Mul(x, y *node) *node {
	if xv, ok := x.asConstant(); ok {
		if yv, ok2 := y.asConstant(); ok2 {
			return c.constant(xv * yv)
		}
	}
	// mul(0, x) -> 0, even when x is undefined or non-finite: this is
	// the MUL zero short-circuit's construction-time counterpart, and
	// is sound because the product is 0 for every possible value of x
	// under this system's contract (spec.md §4.2, §4.4).
	if v, ok := x.asConstant(); ok && v == 0 {
		return c.constant(0)
	}
	if v, ok := y.asConstant(); ok && v == 0 {
		return c.constant(0)
	}
	if v, ok := x.asConstant(); ok && v == 1 {
		return y
	}
	if v, ok := y.asConstant(); ok && v == 1 {
		return x
	}
	if v, ok := x.asConstant(); ok && v == -1 {
		return c.Negate(y)
	}
	if v, ok := y.asConstant(); ok && v == -1 {
		return c.Negate(x)
	}
	// NaN absorption comes after the zero short-circuits above (so
	// mul(0, NaN) folds to 0, matching ConstantNode::mul's check order
	// in the source) but before every other rewrite. The sink absorbs
	// the product only when the other factor is the sink too or is
	// provably nonzero; a factor that may be 0 at runtime (a variable,
	// say) keeps a MUL node, so the evaluator's zero short-circuit can
	// still prune the NaN branch.
	if (x.isNaN() && (y.isNaN() || c.g(y, Nonzero))) || (y.isNaN() && c.g(x, Nonzero)) {
		return c.nanNode
	}
	if x.kind == kindInvert && y.kind == kindInvert {
		return c.Invert(c.Mul(x.a, y.a))
	}
	if x.kind == kindNegate && y.kind == kindNegate {
		return c.Mul(x.a, y.a)
	}
	if x.kind == kindNegate {
		return c.Negate(c.Mul(x.a, y))
	}
	if y.kind == kindNegate {
		return c.Negate(c.Mul(x, y.a))
	}
	if x.kind == kindPow && x.a == y {
		return c.Pow(x.a, c.Add(x.b, c.constant(1)))
	}
	if y.kind == kindPow && y.a == x {
		return c.Pow(y.a, c.Add(y.b, c.constant(1)))
	}
	if x.kind == kindSquare && x.a == y {
		return c.Pow(y, c.constant(3))
	}
	if y.kind == kindSquare && y.a == x {
		return c.Pow(x, c.constant(3))
	}
	if x.kind == kindAdd && x.depth > c.assocLimit {
		return c.Add(c.Mul(x.a, y), c.Mul(x.b, y))
	}
	if y.kind == kindAdd && y.depth > c.assocLimit {
		return c.Add(c.Mul(x, y.a), c.Mul(x, y.b))
	}
	return c.binaryMulRaw(x, y)
}

// Pow builds base^exp.
func (c *Context) Pow(base, exp *node) *node {
	if base.isNaN() || exp.isNaN() {
		return c.nanNode
	}
	if bv, ok := base.asConstant(); ok {
		if ev, ok2 := exp.asConstant(); ok2 {
			return c.constant(math.Pow(bv, ev))
		}
	}
	if v, ok := exp.asConstant(); ok {
		switch v {
		case 0:
			return c.constant(1)
		case 1:
			return base
		case 2:
			return c.Square(base)
		case -1:
			return c.Invert(base)
		case 0.5:
			return c.Sqrt(base)
		case 1.0 / 3.0:
			return c.Cbrt(base)
		}
	}
	if v, ok := base.asConstant(); ok {
		if v == 0 && c.g(exp, Nonzero) {
			return c.constant(0)
		}
		if v == 1 {
			return c.constant(1)
		}
		if v == math.E {
			return c.Exp(exp)
		}
	}
	switch base.kind {
	case kindSqrt:
		return c.Pow(base.a, c.half(exp))
	case kindCbrt:
		return c.Pow(base.a, c.third(exp))
	case kindSquare:
		return c.Pow(base.a, c.double(exp))
	case kindExp:
		return c.Exp(c.Mul(base.a, exp))
	case kindInvert:
		return c.Pow(base.a, c.Negate(exp))
	case kindPow:
		return c.Pow(base.a, c.Mul(base.b, exp))
	}
	return c.binaryPowRaw(base, exp)
}
