package domain

// EditMode tells whether the form creates a new record or edits an existing one.
type EditMode string

const (
	ModeCreating EditMode = "creating"
	ModeEditing  EditMode = "editing"
)

// EditSession is the transient form state attached to a record store.
// TargetID is set exactly when Mode is ModeEditing.
type EditSession[D any] struct {
	Mode     EditMode
	TargetID RecordID
	Draft    D
}

// NewEditSession returns a session in creating mode with an empty draft.
func NewEditSession[D any]() EditSession[D] {
	return EditSession[D]{Mode: ModeCreating}
}

func (s EditSession[D]) Editing() bool {
	return s.Mode == ModeEditing
}

// Valid reports whether Mode and TargetID agree.
func (s EditSession[D]) Valid() bool {
	switch s.Mode {
	case ModeCreating:
		return s.TargetID == ""
	case ModeEditing:
		return s.TargetID != ""
	default:
		return false
	}
}
