// Package anim holds the tick-counted animation state for the display.
//
// Every animated property is a Track with its own Divider: the track advances
// once every N calls to Advance. Speed is therefore coupled to the render loop
// rate and is not frame independent. Swap in another Animator to change that.
//
// Tracks for the roster composition (NewMain):
//
//	TrackLiveTextColor  every 7 ticks   "LIVE" color cycle
//	TrackLogoPatrol     every 7 ticks   logo patrols x in [0, 28]
//	TrackSpriteFrame    every 4 ticks   15-frame sprite
//	TrackRosterScroll   every 2 ticks   roster scrolls when wider than the viewport
//	TrackRosterColor    every 5 ticks   roster gray pulse
//
// NewSplash builds the "now live" tracks, which step on every call.
package anim
