package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeTabs AppMode = iota
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeTabs:
		return "Tabs"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
