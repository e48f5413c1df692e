package event

import "chorepet/internal/model"

type Type string

const (
	TypeTaskAdded    Type = "task_added"
	TypeTaskUpdated  Type = "task_updated"
	TypeTaskDeleted  Type = "task_deleted"
	TypeMoneyUpdated Type = "money_updated"
)

// Event is one state-change notification, emitted once per mutating
// operation and fanned out to every connected subscriber. Data is the wire
// payload for the frontend socket contract.
type Event struct {
	Type Type `json:"event"`
	Data any  `json:"data"`
}

func TaskAdded(t model.Task) Event {
	return Event{Type: TypeTaskAdded, Data: t}
}

func TaskUpdated(id int, completed bool) Event {
	return Event{Type: TypeTaskUpdated, Data: map[string]any{
		"id":             id,
		"task_completed": completed,
	}}
}

func TaskDeleted(id int) Event {
	return Event{Type: TypeTaskDeleted, Data: map[string]any{"id": id}}
}

// MoneyUpdated carries the bare integer balance; the frontend feeds it
// straight into its coin display.
func MoneyUpdated(balance int) Event {
	return Event{Type: TypeMoneyUpdated, Data: balance}
}
