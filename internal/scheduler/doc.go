// Package scheduler runs onair's main loop.
//
// The loop ticks at the scroll delay. Each tick feeds the liveness signal,
// then either polls the status API (when at least the update delay has passed
// since the previous poll) or sleeps one tick and renders an animation frame.
// Polling and rendering never overlap, so animation pauses while a request is
// in flight and while splashes run.
//
// The Scheduler owns its State (the live-set tracker and the time of the last
// poll) and is not safe for concurrent use.
package scheduler
