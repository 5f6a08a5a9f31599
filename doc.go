// Package symcalc implements a symbolic multivariable differential
// calculus engine: named scalar variables, expressions built from them by
// a fixed alphabet of elementary functions and arithmetic operators, and
// operations to evaluate, differentiate, substitute into, and query the
// conservative attributes of those expressions.
//
// Expressions are nodes in a shared, hash-consed directed acyclic graph.
// Every constructor — arithmetic operator or elementary function — runs a
// small rewrite-on-construction algebra so that the DAG never holds a
// reducible configuration: 2+3*4 builds directly as the constant node 14,
// x*1 returns the handle for x, and so on. Because construction is
// hash-consed, two calls that build the same expression return the same
// node, which is what lets Evaluate and Derive share work across an
// expression graph instead of a tree.
package symcalc
