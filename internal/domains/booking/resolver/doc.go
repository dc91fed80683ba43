// Package resolver decides whether a requested booking fits a room's day and,
// when it does not, proposes the earliest later slot of the same length.
//
// All arithmetic is on half-open minute intervals [start, end): a booking
// ending at 10:00 and one starting at 10:00 do not overlap. The suggestion is
// advisory only; nothing is held for the visitor.
package resolver
