// Package live tracks which monitored channels are broadcasting.
//
// # Overview
//
// Each poll produces a Set of live channel names. The Tracker keeps the
// previous and the current Set and turns every new observation into a Delta:
//
//	previous ──┐
//	           ├─> Diff() ─> NewlyLive (sorted), NewlyOffline
//	current  ──┘
//
// NewlyLive drives the "now live" splash queue; NewlyOffline is only logged.
//
// # Matching
//
// Membership is exact string equality. Sorting for display is
// case-insensitive. A configured name that differs in case from the name the
// platform returns will therefore never match; this mirrors observed platform
// behavior and is intentionally not normalized.
//
// # Boot Policy
//
// The first successful Observe treats previous as equal to current, so no
// notification fires for channels that were already live when the process
// started.
//
// # Failures
//
// Fail records an unsuccessful poll (last error and consecutive failure count)
// and leaves both sets unchanged, so a failed poll is a no-op for display.
package live
