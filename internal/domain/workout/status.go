package workout

// Status is free-form on the wire; "completed" is the one value the
// lifecycle itself writes.
type Status string

const StatusCompleted Status = "completed"
