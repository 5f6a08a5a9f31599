package symcalc

// Expression is a handle to a DAG node: copyable and assignable, backed
// by Go's ordinary pointer/GC semantics rather than the source's manual
// reference counting (spec.md §3). Its observable operations are numeric
// evaluation, symbolic derivation, attribute query, variable
// substitution, and printing.
type Expression struct {
	n   *node
	ctx *Context
}

// EmptyExpression is the default "empty" Expression state, which
// evaluates to NaN (spec.md §6).
func EmptyExpression() Expression {
	return Expression{n: DefaultContext.nanNode, ctx: DefaultContext}
}

// ConstExpr wraps a float64 literal as an Expression in DefaultContext.
func ConstExpr(v float64) Expression {
	return DefaultContext.ConstExpr(v)
}

// IntExpr wraps an integer literal as an Expression in DefaultContext.
func IntExpr(v int) Expression {
	return ConstExpr(float64(v))
}

// ConstExpr wraps a float64 literal as an Expression in this Context.
func (c *Context) ConstExpr(v float64) Expression {
	return Expression{n: c.constant(v), ctx: c}
}

func requireSameContext(a, b Expression) *Context {
	if a.ctx != b.ctx {
		panic("symcalc: expressions belong to different Contexts")
	}
	return a.ctx
}

// Add builds a + b.
func Add(a, b Expression) Expression {
	c := requireSameContext(a, b)
	return Expression{n: c.Add(a.n, b.n), ctx: c}
}

// Sub builds a - b.
func Sub(a, b Expression) Expression {
	c := requireSameContext(a, b)
	return Expression{n: c.Add(a.n, c.Negate(b.n)), ctx: c}
}

// Neg builds -a.
func Neg(a Expression) Expression {
	return Expression{n: a.ctx.Negate(a.n), ctx: a.ctx}
}

// Mul builds a * b.
func Mul(a, b Expression) Expression {
	c := requireSameContext(a, b)
	return Expression{n: c.Mul(a.n, b.n), ctx: c}
}

// Div builds a / b.
func Div(a, b Expression) Expression {
	c := requireSameContext(a, b)
	return Expression{n: c.Mul(a.n, c.Invert(b.n)), ctx: c}
}

// Pow builds a^b.
func Pow(a, b Expression) Expression {
	c := requireSameContext(a, b)
	return Expression{n: c.Pow(a.n, b.n), ctx: c}
}

// AddOf sums any number of expressions left to right, the variadic
// convenience spec.md's source exposes for building additive chains.
func AddOf(es ...Expression) Expression {
	if len(es) == 0 {
		return ConstExpr(0)
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = Add(acc, e)
	}
	return acc
}

// MulOf multiplies any number of expressions left to right.
func MulOf(es ...Expression) Expression {
	if len(es) == 0 {
		return ConstExpr(1)
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = Mul(acc, e)
	}
	return acc
}

func unaryExpr(e Expression, f func(*Context, *node) *node) Expression {
	return Expression{n: f(e.ctx, e.n), ctx: e.ctx}
}

func Abs(e Expression) Expression    { return unaryExpr(e, (*Context).Abs) }
func Sgn(e Expression) Expression    { return unaryExpr(e, (*Context).Sgn) }
func Sqrt(e Expression) Expression   { return unaryExpr(e, (*Context).Sqrt) }
func Cbrt(e Expression) Expression   { return unaryExpr(e, (*Context).Cbrt) }
func Exp(e Expression) Expression    { return unaryExpr(e, (*Context).Exp) }
func Expm1(e Expression) Expression  { return unaryExpr(e, (*Context).Expm1) }
func Log(e Expression) Expression    { return unaryExpr(e, (*Context).Log) }
func Log1p(e Expression) Expression  { return unaryExpr(e, (*Context).Log1p) }
func Sin(e Expression) Expression    { return unaryExpr(e, (*Context).Sin) }
func Cos(e Expression) Expression    { return unaryExpr(e, (*Context).Cos) }
func Tan(e Expression) Expression    { return unaryExpr(e, (*Context).Tan) }
func Sec(e Expression) Expression    { return unaryExpr(e, (*Context).Sec) }
func Asin(e Expression) Expression   { return unaryExpr(e, (*Context).Asin) }
func Acos(e Expression) Expression   { return unaryExpr(e, (*Context).Acos) }
func Atan(e Expression) Expression   { return unaryExpr(e, (*Context).Atan) }
func Sinh(e Expression) Expression   { return unaryExpr(e, (*Context).Sinh) }
func Cosh(e Expression) Expression   { return unaryExpr(e, (*Context).Cosh) }
func Tanh(e Expression) Expression   { return unaryExpr(e, (*Context).Tanh) }
func Sech(e Expression) Expression   { return unaryExpr(e, (*Context).Sech) }
func Asinh(e Expression) Expression  { return unaryExpr(e, (*Context).Asinh) }
func Acosh(e Expression) Expression  { return unaryExpr(e, (*Context).Acosh) }
func Atanh(e Expression) Expression  { return unaryExpr(e, (*Context).Atanh) }
func Erf(e Expression) Expression    { return unaryExpr(e, (*Context).Erf) }
func Erfc(e Expression) Expression   { return unaryExpr(e, (*Context).Erfc) }
func Square(e Expression) Expression { return unaryExpr(e, (*Context).Square) }

// Li2 builds the dilogarithm (Spence's function) of e.
func Li2(e Expression) Expression { return unaryExpr(e, (*Context).Spence) }

// Spp builds the softplus integral of e.
func Spp(e Expression) Expression { return unaryExpr(e, (*Context).Softpp) }

// Derive returns the symbolic derivative of e with respect to v.
func (e Expression) Derive(v Variable) Expression {
	return Expression{n: e.ctx.derive(e.n, v.cell), ctx: e.ctx}
}

// Evaluate numerically evaluates e under the current variable bindings.
func (e Expression) Evaluate() float64 {
	return e.ctx.evaluate(e.n)
}

// Guaranteed reports whether attr is conservatively known to hold for e.
func (e Expression) Guaranteed(attr Attribute) bool {
	return e.ctx.guaranteed(e.n, attr)
}

// Depth returns the node's cached depth (1 + max child depth).
func (e Expression) Depth() int {
	return int(e.n.depth)
}

// String renders e in the engine's infix textual form (spec.md §4.7).
func (e Expression) String() string {
	return e.ctx.stringOf(e.n)
}

// Same reports whether e and other are handles to the structurally
// identical (hash-consed) node.
func (e Expression) Same(other Expression) bool {
	return e.n == other.n
}
