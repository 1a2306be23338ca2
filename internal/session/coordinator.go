// Package session holds the per-session state the dashboard needs between
// requests: which record, if any, is open for editing in each section, a
// pending delete confirmation, and the signup/profile flags.
package session

// Kind identifies a record section of the dashboard.
type Kind string

const (
	KindBank Kind = "bank"
	KindFund Kind = "fund"
	KindCard Kind = "card"
)

// Kinds lists every record kind the coordinator tracks.
var Kinds = []Kind{KindBank, KindFund, KindCard}

// Mode is the edit mode of one record kind.
type Mode string

const (
	Browsing      Mode = "browsing"
	Creating      Mode = "creating"
	Editing       Mode = "editing"
	PendingDelete Mode = "pending_delete"
)

// State is the edit state of one record kind. RecordID is meaningful only in
// Editing and PendingDelete modes.
type State struct {
	Mode     Mode `json:"mode"`
	RecordID uint `json:"record_id,omitempty"`
}

// Coordinator tracks at most one open form per record kind within a session.
// Requesting a new edit silently replaces whatever was open before; there is
// no draft persistence to lose.
type Coordinator struct {
	States           map[Kind]State `json:"states"`
	JustSignedUp     bool           `json:"just_signed_up"`
	ProfileCompleted bool           `json:"profile_completed"`
}

// NewCoordinator returns a coordinator with every kind Browsing.
func NewCoordinator() *Coordinator {
	c := &Coordinator{}
	c.Reset()
	return c
}

// Reset returns every kind to Browsing. Called at login; the flags are left
// for the caller to set.
func (c *Coordinator) Reset() {
	c.States = make(map[Kind]State, len(Kinds))
	for _, k := range Kinds {
		c.States[k] = State{Mode: Browsing}
	}
}

// State returns the current state for kind, defaulting to Browsing.
func (c *Coordinator) State(kind Kind) State {
	if s, ok := c.States[kind]; ok {
		return s
	}
	return State{Mode: Browsing}
}

// StartCreate opens the add form for kind, replacing any open edit.
func (c *Coordinator) StartCreate(kind Kind) {
	c.States[kind] = State{Mode: Creating}
}

// StartEdit opens the edit form for record id, replacing any open form for
// the same kind. Re-requesting the same record is a no-op.
func (c *Coordinator) StartEdit(kind Kind, id uint) {
	c.States[kind] = State{Mode: Editing, RecordID: id}
}

// RequestDelete asks for confirmation before deleting record id.
func (c *Coordinator) RequestDelete(kind Kind, id uint) {
	c.States[kind] = State{Mode: PendingDelete, RecordID: id}
}

// ConfirmDelete returns the record id awaiting deletion and moves back to
// Browsing. ok is false when no delete was pending.
func (c *Coordinator) ConfirmDelete(kind Kind) (id uint, ok bool) {
	s := c.State(kind)
	if s.Mode != PendingDelete {
		return 0, false
	}
	c.States[kind] = State{Mode: Browsing}
	return s.RecordID, true
}

// Finish closes any open form for kind after a save or an explicit cancel.
func (c *Coordinator) Finish(kind Kind) {
	c.States[kind] = State{Mode: Browsing}
}
