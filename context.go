package symcalc

import "sync/atomic"

// DefaultAssocLimit is the default depth threshold beyond which the
// algebra re-associates deep Add chains toward the shallower side (and
// Mul distributes over an Add operand that deep), so
// that construction and evaluation of long chains don't blow the native
// call stack. spec.md §9 calls this ASSOC_LIMIT and suggests 10^4.
const DefaultAssocLimit = 10000

// Context is a symbolic-calculus universe: the hash-cons tables for
// constants and variables and the dirty-level epoch counter. spec.md's
// source keeps this as process-wide global state (§5, §9); this
// implementation binds it to an explicit value per the Design Notes'
// recommendation, with DefaultContext offered for callers that don't need
// isolation. A Context is not safe for concurrent use, matching spec.md
// §5: hash-cons tables, the dirty-level counter and per-node caches are
// unsynchronised mutable state by design.
type Context struct {
	assocLimit int32

	constants map[float64]*node
	variables map[uint64]*node
	nanNode   *node

	dirtyLevel uint64

	nextVarID   uint64
	nextAnonTag uint64
}

// Option configures a Context constructed by NewContext.
type Option func(*Context)

// WithAssocLimit overrides DefaultAssocLimit for a Context.
func WithAssocLimit(limit int32) Option {
	return func(c *Context) { c.assocLimit = limit }
}

// NewContext builds an isolated symbolic-calculus universe with its own
// hash-cons tables and dirty-level counter.
func NewContext(opts ...Option) *Context {
	c := &Context{
		assocLimit: DefaultAssocLimit,
		constants:  make(map[float64]*node),
		variables:  make(map[uint64]*node),
		dirtyLevel: 1,
	}
	c.nanNode = newLeaf(kindNaN)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultContext is the convenience global Context used by the package's
// free functions (Sin, Cos, NewVariable, ...).
var DefaultContext = NewContext()

// Touch bumps the dirty-level counter without any variable assignment,
// forcing every memoised evaluation and derivative in this Context to be
// recomputed on next use. Mirrors Expression::Touch() in the source.
func (c *Context) Touch() {
	c.dirtyLevel++
}

// Touch bumps DefaultContext's dirty-level counter.
func Touch() { DefaultContext.Touch() }

func (c *Context) nextVariableID() uint64 {
	return atomic.AddUint64(&c.nextVarID, 1)
}

func (c *Context) nextAnonName() string {
	n := atomic.AddUint64(&c.nextAnonTag, 1)
	return "$" + itoa(n)
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// constant interns an f64 as a CONSTANT leaf, or returns the NaN sink for
// a NaN input (spec.md §4.1: "any request for a constant first normalises
// NaN to the sink"). Infinities are interned as ordinary constants.
func (c *Context) constant(v float64) *node {
	if v != v { // NaN
		return c.nanNode
	}
	if n, ok := c.constants[v]; ok {
		return n
	}
	n := newLeaf(kindConstant)
	n.constVal = v
	c.constants[v] = n
	return n
}

// variableNode interns the VARIABLE leaf for a cell, by variable identity.
func (c *Context) variableNode(cell *varCell) *node {
	if n, ok := c.variables[cell.id]; ok {
		return n
	}
	n := newLeaf(kindVariable)
	n.v = cell
	c.variables[cell.id] = n
	return n
}

// unary returns the hash-consed wrapper of kind k around a, consulting
// a's per-node function cache first (spec.md §4.1's "per-node function
// cache: maps a unary node kind to the child-linked wrapper"). Peephole
// rewrites must be applied by the caller before reaching this generic
// path — unary is only reached once no rewrite fires.
func (c *Context) unary(k kind, a *node) *node {
	if a.functionCache == nil {
		a.functionCache = make(map[kind]*node)
	}
	if n, ok := a.functionCache[k]; ok {
		return n
	}
	n := newUnaryNode(k, a)
	a.functionCache[k] = n
	return n
}

// binaryAddRaw returns the hash-consed ADD wrapper of a and b, consulting
// the symmetric back-reference recorded on both operands.
func (c *Context) binaryAddRaw(a, b *node) *node {
	if n, ok := a.addCache[b]; ok {
		return n
	}
	n := newBinaryNode(kindAdd, a, b)
	if a.addCache == nil {
		a.addCache = make(map[*node]*node)
	}
	if b.addCache == nil {
		b.addCache = make(map[*node]*node)
	}
	a.addCache[b] = n
	b.addCache[a] = n
	return n
}

// binaryMulRaw is binaryAddRaw's MUL analogue.
func (c *Context) binaryMulRaw(a, b *node) *node {
	if n, ok := a.mulCache[b]; ok {
		return n
	}
	n := newBinaryNode(kindMul, a, b)
	if a.mulCache == nil {
		a.mulCache = make(map[*node]*node)
	}
	if b.mulCache == nil {
		b.mulCache = make(map[*node]*node)
	}
	a.mulCache[b] = n
	b.mulCache[a] = n
	return n
}

// binaryPowRaw stores its back-reference only on the base, keyed by
// exponent, per spec.md §4.1.
func (c *Context) binaryPowRaw(base, exp *node) *node {
	if base.powCache != nil {
		if n, ok := base.powCache[exp]; ok {
			return n
		}
	}
	n := newBinaryNode(kindPow, base, exp)
	if base.powCache == nil {
		base.powCache = make(map[*node]*node)
	}
	base.powCache[exp] = n
	return n
}
