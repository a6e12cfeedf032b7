package model

// TaskStatus represents the stage of a single-item download task.
type TaskStatus string

const (
	// TaskStatusPending means the task was created but nothing ran yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusInfoFetched means the engine resolved the item metadata
	TaskStatusInfoFetched TaskStatus = "InfoFetched"

	// TaskStatusRequestBuilt means quality, trim and destination are assembled
	TaskStatusRequestBuilt TaskStatus = "RequestBuilt"

	// TaskStatusDelegated means the request was handed to the engine
	TaskStatusDelegated TaskStatus = "Delegated"

	// TaskStatusCompleted means the engine reported a final on-disk path
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusFailed means some stage failed; failed is terminal, no retry
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsTerminal returns true if the task reached a final state.
func (ts TaskStatus) IsTerminal() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusFailed
}
