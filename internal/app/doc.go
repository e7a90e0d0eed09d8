// Package app is onair's composition root.
//
// Run loads and validates the configuration, sets up logging, opens the
// renderer (a terminal screen, or a log-only one when headless), and builds
// the display state machine. It then walks the boot screen through its status
// lines:
//
//	Starting!    configuration loaded
//	Get Token    client-credentials grant in progress
//	Get status   first poll in progress
//
// If the token cannot be obtained the screen shows "Token error" for the hold
// time and Run returns the error; cmd/onair turns that into exit status 1.
//
// After the first poll the scheduler takes over and Run blocks until the
// context is cancelled, either by a signal or by the quit key in the terminal
// screen. When use_watchdog is set a software watchdog is armed around the
// loop and fed on every tick and every splash step.
package app
