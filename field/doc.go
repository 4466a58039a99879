// Package field provides the ASCII text engine behind tuido's input widget.
//
// The engine is byte-oriented: one byte is one character is one terminal
// column. It splits lines into whitespace and word tokens, lays them out in a
// fixed width-by-height grid, and maps buffer offsets to screen cells. Field
// wraps the engine into an editable widget with undo history and a lipgloss
// renderer.
package field
