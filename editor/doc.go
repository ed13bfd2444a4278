// Package editor provides the Bubble Tea model of the byte editor: a ring of
// buffers shown as a hex pane and a text pane, driven by keys decoded by the
// input package.
//
// The package is responsible for key dispatch, prompts, the help page,
// rendering, and host integration hooks (clipboard and change events).
package editor
