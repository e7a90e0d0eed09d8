// Package config loads onair's configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/onair/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Fields that are missing or empty keep their defaults
//
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
// ONAIR_CLIENT_ID and ONAIR_CLIENT_SECRET override the credentials from the
// file so secrets can stay out of it.
//
// # TOML Format
//
//	channels = ["kruge", "alice"]
//	client_id = "..."
//	client_secret = "..."
//	timezone_offset = -5
//	use_watchdog = false
//	update_delay = "63s"
//	nowlive_delay = "15s"
//	scroll_delay = "30ms"
//	watchdog_timeout = "16s"
//	debug = false
//	log_file = "~/.local/share/onair/onair.log"
//
// auth_url and streams_url point at the Twitch endpoints by default and exist
// for tests and proxies.
//
// # Validation
//
// Load does not reject incomplete files. Validate enforces that channels and
// both credentials are present, the offset is within ±14 hours, delays are
// positive, and the endpoint URLs are absolute. Its error names every failing
// key at once.
package config
