package dto

type TaskOutput struct {
	Index int
	Label string
	Done  bool
}

type RoutineOutput struct {
	Date           string
	Tasks          []TaskOutput
	CompletedCount int
	Total          int
}

type SetTaskStatusInput struct {
	Index int
	Done  bool
}

// EditOp names a definition edit: add, remove, up, or down.
type EditOp string

const (
	EditAdd      EditOp = "add"
	EditRemove   EditOp = "remove"
	EditMoveUp   EditOp = "up"
	EditMoveDown EditOp = "down"
)

// EditInput uses Label for add and Index for the rest.
type EditInput struct {
	Op    EditOp
	Label string
	Index int
}
