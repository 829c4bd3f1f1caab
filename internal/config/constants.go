package config

import "time"

// Countdown defaults.
const (
	DefaultMinutes = 5
	DefaultSeconds = 30
	TickInterval   = time.Second
)

// Display text.
const (
	// DefaultBanner is the static demand indicator shown above the timer.
	DefaultBanner = "High demand: other shoppers are looking at items in your cart."

	// ReservedFormat wraps the MM:SS value.
	ReservedFormat = "Your items are reserved for %s"

	ExpiredMessage = "Your reservation has expired. Items may no longer be available."
)

// Layout constants.
const (
	// DefaultWidth is used until the terminal reports its size.
	DefaultWidth = 80

	// MinProgressWidth is the narrowest progress bar drawn.
	MinProgressWidth = 10

	// TargetProgressWidth is the preferred progress bar width.
	TargetProgressWidth = 40

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Application settings.
const (
	AppName        = "holdclock"
	ConfigFileName = "config.yaml"
	LogFileName    = "holdclock.log"
	DefaultTheme   = "default"
)
