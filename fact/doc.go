// Package fact implements a boolean fact algebra with diagnostic message
// synthesis. A Fact is an immutable node in a boolean expression tree that
// carries four message templates (full and simplified phrasing, each in
// start-of-sentence and mid-sentence grammar) along with matching argument
// lists, so that combined or negated facts still render grammatically
// correct explanations at any nesting depth.
//
// Facts are built by the leaf factories True and False and combined with
// Not, And, and Or. The right operand of And and Or is a thunk that is
// forced at most once, and never when the left operand already decides the
// result. Message rendering is lazy and recomputed on every call; templates
// come from the embedded locale catalogs and argument values are converted
// to display text by a prettifier threaded through the tree.
package fact
