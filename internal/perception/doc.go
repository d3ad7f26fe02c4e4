// Package perception decides what a character can see from where they stand
// and phrases it as English prose.
//
// The pipeline runs in one direction over an immutable world snapshot:
//
//	FindVisibleActors -> Classify* -> Aggregate -> Render
//
// Nothing in this package mutates the world, so any number of observers can
// be described concurrently against the same snapshot. Narrate is a separate
// renderer for single combat sentences told from the point of view of the
// attacker, the defendant and everyone watching.
package perception
