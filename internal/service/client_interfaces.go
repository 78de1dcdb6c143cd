package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// ClientSyncService defines the client-side contract for mirroring the remote
// collection. It owns the snapshot subscription and the authoritative ordered
// item list the rest of the client reads.
type ClientSyncService interface {
	// Start attaches to the live snapshot feed. The first pushed snapshot
	// replaces the (initially empty) item list; every later push replaces it
	// again as a whole. Calling Start while a feed is already running
	// restarts the subscription; snapshots from the replaced feed are
	// discarded. Returns an error if the feed cannot be established.
	Start(ctx context.Context) error

	// Stop detaches from the feed. The item list keeps its last received
	// contents. Safe to call multiple times and before Start.
	Stop()

	// Items returns the current ordered item list. The returned slice is a
	// copy; callers may retain or mutate it freely.
	Items() []models.CatalogItem

	// ItemByID looks up one item in the current list by identifier.
	ItemByID(id string) (models.CatalogItem, bool)

	// Updates returns a signal channel that receives after every list
	// replacement and after every recorded transport failure. Deliveries
	// coalesce; a reader that missed several signals still observes the
	// latest state via Items.
	Updates() <-chan struct{}
}

// ClientSessionService defines the client-side contract for the edit session:
// the form draft, its target, validation-before-write, and the two-phase
// delete flow. At most one record is an edit target at any time.
type ClientSessionService interface {
	// BeginCreate switches the session to create mode with an empty form,
	// dropping any previous draft and edit target.
	BeginCreate()

	// BeginEdit loads the current field values of the item identified by id
	// into the form and makes id the sole edit target, replacing any
	// previous target. Returns ErrItemNotFound if id is not in the current
	// list.
	BeginEdit(id string) error

	// SetForm replaces the form draft with the given raw field values.
	// Remote snapshot churn never touches the draft; this is the only way
	// field text changes outside BeginCreate/BeginEdit.
	SetForm(form models.FormState)

	// Form returns the current form draft.
	Form() models.FormState

	// Phase reports whether a submit would create a new record or update the
	// edit target.
	Phase() models.EditPhase

	// TargetID returns the current edit target, or an empty string in create
	// mode.
	TargetID() string

	// Submit validates the form draft and, if it is valid, issues the write
	// for the current phase. On validation failure the draft is kept, a
	// validation failure is recorded, and no request leaves the client. On a
	// rejected or failed write the draft is kept and a write failure is
	// recorded. On success the session resets to create mode with an empty
	// form and the failure slot is cleared.
	Submit(ctx context.Context) error

	// Cancel discards the draft and returns the session to create mode with
	// an empty form. It also clears a pending delete and the failure slot.
	Cancel()

	// RequestDelete marks the item identified by id for deletion, pending
	// confirmation. Returns ErrItemNotFound if id is not in the current
	// list. A second request replaces the first.
	RequestDelete(id string) error

	// PendingDelete returns the id awaiting delete confirmation, if any.
	PendingDelete() (string, bool)

	// ResolveDelete completes the two-phase delete. With confirmed false the
	// pending mark is dropped and nothing is sent. With confirmed true the
	// delete is issued; on failure a write failure is recorded. Deleting the
	// current edit target leaves the session in edit mode with its draft
	// intact; a later submit against the vanished id is a write failure.
	ResolveDelete(ctx context.Context, confirmed bool) error
}

// FailureState is the single shared failure slot of the client. At most one
// failure is held at a time; recording a new one replaces the old.
type FailureState interface {
	// Failure returns the currently held failure, or nil.
	Failure() *models.Failure

	// Clear empties the slot. Used when the user dismisses the message.
	Clear()
}
