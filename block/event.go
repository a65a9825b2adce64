package block

type EventType int

const (
	EventCreate EventType = iota
	EventDelete
	EventMove
	EventChange
	EventFinishedLoading
)

var eventNames = [...]string{
	EventCreate:          "create",
	EventDelete:          "delete",
	EventMove:            "move",
	EventChange:          "change",
	EventFinishedLoading: "finished_loading",
}

func (t EventType) String() string { return eventNames[t] }

// ParamsChange is the change-event name used when a procedure's parameters are replaced.
const ParamsChange = "PARAMS"

// Event describes one mutation of a workspace.
type Event struct {
	Type    EventType
	BlockID string

	// IDs lists every block removed by a delete.
	IDs []string

	// Change events.
	Name     string
	OldValue string
	NewValue string

	// Move events.
	OldParentID string
	OldSlot     string
	NewParentID string
	NewSlot     string
}

// Listener receives workspace events synchronously, in mutation order.
type Listener func(Event)
