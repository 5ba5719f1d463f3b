// Package lotteryengine implements the public tie-break lottery inside the
// evaluation context.
//
// The module owns the draw itself (a Fisher-Yates shuffle over a seeded
// generator, seed taken from a secure entropy source), the immutable draw
// record with its participant snapshot and rendered acta document, and the
// amendment log for non-evidentiary notes. Re-running the shuffle with the
// stored seed reproduces the full order and the winner, which is what makes
// a draw auditable after the fact.
package lotteryengine
