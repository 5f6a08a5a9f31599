package symcalc

// foldConst applies k numerically when x is already a constant leaf, the
// generic "closed-form combination of constants" case common to every
// unary constructor. It also absorbs the NaN sink: every unary function
// of NaN is NaN (spec.md §3; original_source/Laskenta.cpp's Nan struct
// overrides every unary function to return itself unconditionally).
func (c *Context) foldConst(k kind, x *node) (*node, bool) {
	if x.isNaN() {
		return x, true
	}
	if v, ok := x.asConstant(); ok {
		return c.constant(evalUnaryNumeric(k, v)), true
	}
	return nil, false
}

func (c *Context) half(y *node) *node   { return c.Mul(y, c.constant(0.5)) }
func (c *Context) double(y *node) *node { return c.Mul(y, c.constant(2)) }
func (c *Context) third(y *node) *node  { return c.Mul(y, c.constant(1.0/3.0)) }

// Abs builds |x|.
func (c *Context) Abs(x *node) *node {
	if n, ok := c.foldConst(kindAbs, x); ok {
		return n
	}
	if c.g(x, Nonnegative) {
		return x
	}
	if c.g(x, Nonpositive) {
		return c.Negate(x)
	}
	switch x.kind {
	case kindAbs, kindSqrt, kindExp, kindAcos, kindCosh, kindAcosh, kindSquare, kindXconic, kindYconic, kindZconic:
		return x
	case kindInvert:
		return c.Invert(c.Abs(x.a))
	case kindNegate:
		return c.Abs(x.a)
	}
	return c.unary(kindAbs, x)
}

// Sgn builds sgn(x).
func (c *Context) Sgn(x *node) *node {
	if n, ok := c.foldConst(kindSgn, x); ok {
		return n
	}
	if c.g(x, Positive) {
		return c.constant(1)
	}
	if c.g(x, Negative) {
		return c.constant(-1)
	}
	switch x.kind {
	case kindSgn:
		return x
	case kindAbs:
		return c.Abs(c.Sgn(x.a))
	case kindExp, kindCosh:
		return c.constant(1)
	case kindCbrt, kindAsin, kindAtan, kindSinh, kindTanh, kindAsinh, kindAtanh, kindErf:
		return c.Sgn(x.a)
	}
	return c.unary(kindSgn, x)
}

// Sqrt builds sqrt(x).
func (c *Context) Sqrt(x *node) *node {
	if n, ok := c.foldConst(kindSqrt, x); ok {
		return n
	}
	switch x.kind {
	case kindSquare:
		return c.Abs(x.a)
	case kindInvert:
		return c.Invert(c.Sqrt(x.a))
	case kindPow:
		return c.Pow(x.a, c.half(x.b))
	}
	return c.unary(kindSqrt, x)
}

// Cbrt builds cbrt(x).
func (c *Context) Cbrt(x *node) *node {
	if n, ok := c.foldConst(kindCbrt, x); ok {
		return n
	}
	switch x.kind {
	case kindSgn:
		return x
	case kindNegate:
		return c.Negate(c.Cbrt(x.a))
	case kindInvert:
		return c.Invert(c.Cbrt(x.a))
	}
	return c.unary(kindCbrt, x)
}

// Exp builds exp(x).
func (c *Context) Exp(x *node) *node {
	if n, ok := c.foldConst(kindExp, x); ok {
		return n
	}
	if x.kind == kindLog && c.g(x.a, Positive) {
		return x.a
	}
	return c.unary(kindExp, x)
}

// Expm1 builds expm1(x) = exp(x) - 1.
func (c *Context) Expm1(x *node) *node {
	if n, ok := c.foldConst(kindExpm1, x); ok {
		return n
	}
	return c.unary(kindExpm1, x)
}

// Log builds the natural logarithm log(x).
func (c *Context) Log(x *node) *node {
	if n, ok := c.foldConst(kindLog, x); ok {
		return n
	}
	switch x.kind {
	case kindExp:
		return x.a
	case kindInvert:
		return c.Negate(c.Log(x.a))
	}
	return c.unary(kindLog, x)
}

// Log1p builds log(1+x).
func (c *Context) Log1p(x *node) *node {
	if n, ok := c.foldConst(kindLog1p, x); ok {
		return n
	}
	return c.unary(kindLog1p, x)
}

// Sin builds sin(x).
func (c *Context) Sin(x *node) *node {
	if n, ok := c.foldConst(kindSin, x); ok {
		return n
	}
	switch x.kind {
	case kindAsin:
		if c.g(x.a, Unitrange) {
			return x.a
		}
	case kindNegate:
		return c.Negate(c.Sin(x.a))
	}
	return c.unary(kindSin, x)
}

// Cos builds cos(x).
func (c *Context) Cos(x *node) *node {
	if n, ok := c.foldConst(kindCos, x); ok {
		return n
	}
	switch x.kind {
	case kindAcos:
		if c.g(x.a, Unitrange) {
			return x.a
		}
	case kindAbs:
		return c.Cos(x.a)
	case kindNegate:
		return c.Cos(x.a)
	}
	return c.unary(kindCos, x)
}

// Tan builds tan(x).
func (c *Context) Tan(x *node) *node {
	if n, ok := c.foldConst(kindTan, x); ok {
		return n
	}
	switch x.kind {
	case kindAtan:
		return x.a
	case kindNegate:
		return c.Negate(c.Tan(x.a))
	}
	return c.unary(kindTan, x)
}

// Sec builds sec(x) = 1/cos(x).
func (c *Context) Sec(x *node) *node {
	if n, ok := c.foldConst(kindSec, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Sec(x.a)
	}
	return c.unary(kindSec, x)
}

// Asin builds asin(x).
func (c *Context) Asin(x *node) *node {
	if n, ok := c.foldConst(kindAsin, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Negate(c.Asin(x.a))
	}
	return c.unary(kindAsin, x)
}

// Acos builds acos(x).
func (c *Context) Acos(x *node) *node {
	if n, ok := c.foldConst(kindAcos, x); ok {
		return n
	}
	return c.unary(kindAcos, x)
}

// Atan builds atan(x).
func (c *Context) Atan(x *node) *node {
	if n, ok := c.foldConst(kindAtan, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Negate(c.Atan(x.a))
	}
	return c.unary(kindAtan, x)
}

// Sinh builds sinh(x).
func (c *Context) Sinh(x *node) *node {
	if n, ok := c.foldConst(kindSinh, x); ok {
		return n
	}
	switch x.kind {
	case kindAsinh:
		return x.a
	case kindNegate:
		return c.Negate(c.Sinh(x.a))
	}
	return c.unary(kindSinh, x)
}

// Cosh builds cosh(x).
func (c *Context) Cosh(x *node) *node {
	if n, ok := c.foldConst(kindCosh, x); ok {
		return n
	}
	switch x.kind {
	case kindAcosh:
		if c.g(x.a, Nonnegative) {
			return x.a
		}
	case kindNegate:
		return c.Cosh(x.a)
	}
	return c.unary(kindCosh, x)
}

// Tanh builds tanh(x).
func (c *Context) Tanh(x *node) *node {
	if n, ok := c.foldConst(kindTanh, x); ok {
		return n
	}
	switch x.kind {
	case kindAtanh:
		return x.a
	case kindNegate:
		return c.Negate(c.Tanh(x.a))
	}
	return c.unary(kindTanh, x)
}

// Sech builds sech(x) = 1/cosh(x).
func (c *Context) Sech(x *node) *node {
	if n, ok := c.foldConst(kindSech, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Sech(x.a)
	}
	return c.unary(kindSech, x)
}

// Asinh builds asinh(x).
func (c *Context) Asinh(x *node) *node {
	if n, ok := c.foldConst(kindAsinh, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Negate(c.Asinh(x.a))
	}
	return c.unary(kindAsinh, x)
}

// Acosh builds acosh(x).
func (c *Context) Acosh(x *node) *node {
	if n, ok := c.foldConst(kindAcosh, x); ok {
		return n
	}
	return c.unary(kindAcosh, x)
}

// Atanh builds atanh(x).
func (c *Context) Atanh(x *node) *node {
	if n, ok := c.foldConst(kindAtanh, x); ok {
		return n
	}
	switch x.kind {
	case kindTanh:
		return x.a
	case kindNegate:
		return c.Negate(c.Atanh(x.a))
	}
	return c.unary(kindAtanh, x)
}

// Erf builds erf(x).
func (c *Context) Erf(x *node) *node {
	if n, ok := c.foldConst(kindErf, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return c.Negate(c.Erf(x.a))
	}
	return c.unary(kindErf, x)
}

// Erfc builds erfc(x) = 1 - erf(x).
func (c *Context) Erfc(x *node) *node {
	if n, ok := c.foldConst(kindErfc, x); ok {
		return n
	}
	return c.unary(kindErfc, x)
}

// Invert builds 1/x.
func (c *Context) Invert(x *node) *node {
	if n, ok := c.foldConst(kindInvert, x); ok {
		return n
	}
	switch x.kind {
	case kindInvert:
		if c.g(x.a, Nonzero) {
			return x.a
		}
	case kindPow:
		return c.Pow(x.a, c.Negate(x.b))
	}
	return c.unary(kindInvert, x)
}

// Negate builds -x.
func (c *Context) Negate(x *node) *node {
	if n, ok := c.foldConst(kindNegate, x); ok {
		return n
	}
	if x.kind == kindNegate {
		return x.a
	}
	return c.unary(kindNegate, x)
}

// Square builds x^2.
func (c *Context) Square(x *node) *node {
	if n, ok := c.foldConst(kindSquare, x); ok {
		return n
	}
	switch x.kind {
	case kindSqrt:
		if c.g(x.a, Nonnegative) {
			return x.a
		}
	case kindNegate:
		return c.Square(x.a)
	case kindPow:
		return c.Pow(x.a, c.double(x.b))
	}
	return c.unary(kindSquare, x)
}

// Softpp builds the integral of softplus, log(1+e^x).
func (c *Context) Softpp(x *node) *node {
	if n, ok := c.foldConst(kindSoftpp, x); ok {
		return n
	}
	return c.unary(kindSoftpp, x)
}

// Spence builds the dilogarithm Li2(x).
func (c *Context) Spence(x *node) *node {
	if n, ok := c.foldConst(kindSpence, x); ok {
		return n
	}
	return c.unary(kindSpence, x)
}

// Xconic builds sqrt(x^2 - 1).
func (c *Context) Xconic(x *node) *node {
	if n, ok := c.foldConst(kindXconic, x); ok {
		return n
	}
	if x.kind == kindCosh {
		return c.Abs(c.Sinh(x.a))
	}
	return c.unary(kindXconic, x)
}

// Yconic builds sqrt(x^2 + 1).
func (c *Context) Yconic(x *node) *node {
	if n, ok := c.foldConst(kindYconic, x); ok {
		return n
	}
	switch x.kind {
	case kindSinh:
		return c.Cosh(x.a)
	case kindXconic:
		if c.g(x.a, Antiopenunitrange) {
			return c.Abs(x.a)
		}
	}
	return c.unary(kindYconic, x)
}

// Zconic builds sqrt(1 - x^2).
func (c *Context) Zconic(x *node) *node {
	if n, ok := c.foldConst(kindZconic, x); ok {
		return n
	}
	switch x.kind {
	case kindSin:
		return c.Abs(c.Cos(x.a))
	case kindCos:
		return c.Abs(c.Sin(x.a))
	case kindZconic:
		if c.g(x.a, Unitrange) {
			return c.Abs(x.a)
		}
	}
	return c.unary(kindZconic, x)
}
