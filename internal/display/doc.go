// Package display holds the display-mode state machine and the renderer
// interface it draws through.
//
// Modes move BOOT → IDLE/ROSTER on the first successful poll, between IDLE and
// ROSTER as the live set empties and fills, and into NOTIFY once per newly
// live channel. A splash blocks the caller for its whole dwell and feeds the
// liveness signal on every step. The machine never returns to BOOT.
package display
