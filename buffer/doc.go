// Package buffer implements the byte document model for hed.
//
// A Buffer owns a byte slice and the editing state attached to it: cursor
// offset, the first visible row, the active pane and a pending hex nibble.
// Offsets are 0-based byte positions; rows are BytesPerRow bytes wide.
package buffer
