package symcalc

// node is the interior DAG representation. Every Expression the public
// façade hands out wraps a *node. Nodes are immutable in their kind and
// children once constructed; the only mutable fields are the caches
// described below, which exist purely to make hash-consing and
// memoisation work.
type node struct {
	kind kind

	// leaves
	constVal float64
	v        *varCell

	// children: unary uses a only; Add/Mul use a,b symmetrically; Pow
	// uses a=base, b=exponent.
	a, b *node

	depth int32

	// Hash-cons back-reference caches: ordinary (strong) map entries,
	// never evicted, recording which composites this node participates
	// in, so that e.g. abs(x)
	// called twice on the same x returns the same wrapper. Named after
	// spec.md's functionNode/addNode/mulNode/powNode.
	functionCache map[kind]*node
	addCache      map[*node]*node
	mulCache      map[*node]*node
	powCache      map[*node]*node

	// Derivative cache, epoch-gated: derivCache[v.id] is valid only
	// while derivEpoch equals the owning Context's dirtyLevel. Reset
	// (by epoch mismatch, not explicit clearing) on any variable write,
	// generalising the source's single-slot cachedNode + purge() into a
	// per-variable map since Derive may be called against many
	// variables on the same shared node.
	derivEpoch uint64
	derivCache map[uint64]*node

	// Evaluation cache: valid iff evalEpoch equals the owning Context's
	// dirtyLevel.
	evalEpoch uint64
	evalVal   float64
}

// childDepth returns 1 + max(child depths), used only to trigger
// associativity rebalancing in deep Add/Mul chains.
func childDepth(children ...*node) int32 {
	var max int32
	for _, c := range children {
		if c != nil && c.depth > max {
			max = c.depth
		}
	}
	return max + 1
}

func newLeaf(k kind) *node {
	return &node{kind: k, depth: 1}
}

func newUnaryNode(k kind, a *node) *node {
	return &node{kind: k, a: a, depth: childDepth(a)}
}

func newBinaryNode(k kind, a, b *node) *node {
	return &node{kind: k, a: a, b: b, depth: childDepth(a, b)}
}

// isNaN reports whether n is the absorbing NaN sink.
func (n *node) isNaN() bool { return n.kind == kindNaN }

func (n *node) isKind(k kind) bool { return n.kind == k }

// asConstant returns the node's constant value and true if n is a
// CONSTANT leaf (which may hold an infinity).
func (n *node) asConstant() (float64, bool) {
	if n.kind == kindConstant {
		return n.constVal, true
	}
	return 0, false
}
