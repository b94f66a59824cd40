package ui

import (
	"tuiselect/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// savedMsg contains the result of an explicit save
type savedMsg struct {
	err error
}

// historyPagerMsg contains the result of the history pager command
type historyPagerMsg struct {
	err error
}
