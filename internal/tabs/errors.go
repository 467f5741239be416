package tabs

import "errors"

var (
	// ErrEmptyMap is returned when a TabMap has no main tabs.
	ErrEmptyMap = errors.New("tab map has no main tabs")
	// ErrNoSubTabs is returned when a main tab has an empty key or no sub-tabs.
	ErrNoSubTabs = errors.New("main tab has no sub-tabs")
	// ErrDuplicateKey is returned when a main-tab key appears twice.
	ErrDuplicateKey = errors.New("duplicate main tab")
	// ErrDuplicateSubTab is returned when a label appears twice under one main tab.
	ErrDuplicateSubTab = errors.New("duplicate sub-tab")
	// ErrUnknownTab is returned when a selection names a tab that is not in the map.
	ErrUnknownTab = errors.New("unknown tab")
)
