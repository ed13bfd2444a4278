// Package input decodes raw terminal bytes into logical key events.
//
// The decoder never blocks indefinitely: a Source returns one byte or
// reports that its short per-byte timeout elapsed, which is how a lone ESC
// is told apart from the start of an escape sequence.
package input
