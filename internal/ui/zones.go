package ui

import (
	"fmt"

	"tabview/internal/tabs"
)

// zoneID returns the bubblezone ID for a tab button. prefix keeps IDs unique
// when more than one TabsView shares a zone manager.
func zoneID(prefix string, b tabs.Button) string {
	return fmt.Sprintf("%stab-%s-%d", prefix, b.Level, b.Index)
}
