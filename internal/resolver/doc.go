// Package resolver answers whether a program can ultimately be run by the
// reference executor LOCAL, given every interpreter and translator declared
// so far.
//
// The Resolver is the single owner of the capability graph, the program
// registry and the pending translator set. Every declaration and query is
// one synchronous call that runs to completion, including the propagation
// fixed point, before the next call is accepted.
//
// # Edge insertion rules
//
// An interpreter for L written in B inserts the edge L -> B unconditionally.
// Whether L programs can actually run is left to the reachability query,
// which follows the edge only as far as B itself can run.
//
// A translator from S to T written in B inserts the edge S -> T only once B
// reaches LOCAL. Until then it waits in the pending set. Every newly inserted
// edge re-runs propagation, which repeatedly drains the pending translators
// whose base has become reachable and inserts their edges until a pass drains
// nothing. The edge set is finite and grows on every productive pass, so the
// loop terminates.
//
// The resulting state does not depend on declaration order: the edge set is
// always the least fixed point of the declarations made so far.
package resolver
