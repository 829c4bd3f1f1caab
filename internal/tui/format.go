package tui

import (
	"fmt"

	"github.com/akyairhashvil/holdclock/internal/config"
	"github.com/akyairhashvil/holdclock/internal/countdown"
)

// ReservedLine is the sentence shown under the banner, e.g.
// "Your items are reserved for 05:30".
func ReservedLine(rt countdown.RemainingTime) string {
	return fmt.Sprintf(config.ReservedFormat, rt.String())
}
