// Package pending holds translator declarations whose enabling precondition
// (their base language being executable) does not hold yet.
//
// The set only grows through Add and only shrinks through DrainSatisfied. An
// entry that has been drained is never re-admitted.
package pending
