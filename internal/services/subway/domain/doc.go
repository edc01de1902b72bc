// Package domain models metro lines as a single directed path of sections.
//
// A Line owns a Sections value that keeps its edges in chain order, from the
// up terminal to the down terminal. Sections only grow and shrink at the down
// terminal, and every rejected mutation leaves the path untouched. Stations are
// referenced by id and never owned by a section.
//
// Nothing in this package locks; callers serialize mutations of one line.
package domain
