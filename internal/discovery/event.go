package discovery

import "toposcope/internal/topology"

type EventType int

const (
	// EventInit is fired once, when the first view becomes available.
	EventInit EventType = iota
	// EventChanged is fired when instances joined or left the topology.
	EventChanged
	// EventPropertiesChanged is fired when membership is unchanged but at
	// least one instance's properties differ.
	EventPropertiesChanged
)

func (t EventType) String() string {
	switch t {
	case EventInit:
		return "init"
	case EventChanged:
		return "changed"
	case EventPropertiesChanged:
		return "properties-changed"
	default:
		return "unknown"
	}
}

// Event describes one observed transition between two views. It implements
// topology.ChangeEvent so it can feed a ViewChange directly.
type Event struct {
	typ     EventType
	oldView *View
	newView *View
}

func NewEvent(typ EventType, oldView, newView *View) *Event {
	return &Event{typ: typ, oldView: oldView, newView: newView}
}

func (e *Event) Type() EventType {
	return e.typ
}

func (e *Event) OldView() topology.View {
	if e.oldView == nil {
		return nil
	}
	return e.oldView
}

func (e *Event) NewView() topology.View {
	if e.newView == nil {
		return nil
	}
	return e.newView
}
