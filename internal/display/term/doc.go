// Package term renders the matrix composition in a terminal.
//
// Screen runs a bubbletea program on its own goroutine. The core loop draws
// into a local scene and each Tick sends a copied Frame to the program, which
// composes it with lipgloss at one cell per pixel column and one row per two
// pixel rows. Pressing q, esc or ctrl+c calls the quit hook.
//
// Headless implements the same renderer interface for machines without a
// terminal and only logs text changes.
package term
