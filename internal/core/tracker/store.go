package tracker

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports"
)

// Record is a persisted row whose editable fields are captured by D.
type Record[D any] interface {
	RecordID() domain.RecordID
	Draft() D
}

// Draft is the editable field set of a record. Diff returns the patch that
// turns base into the receiver.
type Draft[D any, P any] interface {
	Diff(base D) P
}

// Messages are the user-visible texts of one collection.
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	LoadFailed   string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
}

// ResourceStore caches one owner's record collection and routes every
// mutation through the remote gateway, keeping the edit session in step.
//
// A store has a single owner: it is not safe for concurrent mutation and
// does not queue operations. When two mutations overlap, the last Load to
// return wins.
type ResourceStore[R Record[D], D Draft[D, P], P any] struct {
	name     string
	owner    domain.OwnerID
	gateway  ports.RecordGateway[R, D, P]
	messages Messages
	logger   *slog.Logger

	records  []R
	session  domain.EditSession[D]
	snapshot D
	feedback *FeedbackChannel
	closed   atomic.Bool
}

// NewResourceStore creates an empty store for owner's collection.
func NewResourceStore[R Record[D], D Draft[D, P], P any](
	name string,
	owner domain.OwnerID,
	gateway ports.RecordGateway[R, D, P],
	messages Messages,
	logger *slog.Logger,
) *ResourceStore[R, D, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceStore[R, D, P]{
		name:     name,
		owner:    owner,
		gateway:  gateway,
		messages: messages,
		logger:   logger.With(slog.String("store", name), slog.String("owner_id", owner.String())),
		records:  []R{},
		session:  domain.NewEditSession[D](),
		feedback: NewFeedbackChannel(),
	}
}

// Load replaces the cache with the owner's full collection.
// On failure the cache is left as it was.
func (s *ResourceStore[R, D, P]) Load(ctx context.Context) error {
	records, err := s.gateway.List(ctx, s.owner)
	if s.discarded("load") {
		return nil
	}
	if err != nil {
		return s.fail(apperrors.LoadFailure, s.messages.LoadFailed, err)
	}
	if records == nil {
		records = []R{}
	}
	s.records = records
	s.logger.Debug("Collection loaded", slog.Int("count", len(records)))
	return nil
}

// Submit creates a record from draft, or updates the record under edit with
// the fields that changed since BeginEdit. On success the session returns to
// creating and the collection is reloaded; on failure the session, including
// draft, is kept so the user can retry.
func (s *ResourceStore[R, D, P]) Submit(ctx context.Context, draft D) error {
	s.session.Draft = draft

	var (
		err             error
		success, failed string
	)
	if s.session.Editing() {
		patch := draft.Diff(s.snapshot)
		_, err = s.gateway.Update(ctx, s.session.TargetID, patch)
		success, failed = s.messages.Updated, s.messages.UpdateFailed
	} else {
		_, err = s.gateway.Create(ctx, s.owner, draft)
		success, failed = s.messages.Created, s.messages.CreateFailed
	}
	if s.discarded("submit") {
		return nil
	}
	if err != nil {
		return s.fail(apperrors.SubmitFailure, failed, err)
	}

	s.resetSession()
	s.feedback.Succeed(success)
	// A failed reload reports its own LoadFailure; the submit itself succeeded.
	_ = s.Load(ctx)
	return nil
}

// BeginEdit puts record under edit, replacing any previous target without
// warning about unsaved draft changes. Both messages are cleared even when
// record has no id and the session is left as it was.
func (s *ResourceStore[R, D, P]) BeginEdit(record R) {
	s.feedback.Clear()
	id := record.RecordID()
	if id == "" {
		s.logger.Warn("Ignoring edit of a record without id")
		return
	}
	s.snapshot = record.Draft()
	s.session = domain.EditSession[D]{
		Mode:     domain.ModeEditing,
		TargetID: id,
		Draft:    record.Draft(),
	}
}

// CancelEdit returns the session to creating with an empty draft.
func (s *ResourceStore[R, D, P]) CancelEdit() {
	s.resetSession()
	s.feedback.Clear()
}

// SetDraft binds the form values to the session draft.
func (s *ResourceStore[R, D, P]) SetDraft(draft D) {
	s.session.Draft = draft
}

// Remove deletes the record and reloads the collection. Deleting the record
// under edit also ends the edit, so a later Submit cannot address a missing id.
func (s *ResourceStore[R, D, P]) Remove(ctx context.Context, id domain.RecordID) error {
	err := s.gateway.Delete(ctx, id)
	if s.discarded("remove") {
		return nil
	}
	if err != nil {
		return s.fail(apperrors.DeleteFailure, s.messages.DeleteFailed, err, slog.String("record_id", id.String()))
	}

	if s.session.Editing() && s.session.TargetID == id {
		s.resetSession()
	}
	s.feedback.Succeed(s.messages.Deleted)
	_ = s.Load(ctx)
	return nil
}

// Close tears the store down. Responses arriving afterwards are dropped.
func (s *ResourceStore[R, D, P]) Close() {
	s.closed.Store(true)
}

// Records returns a copy of the cached collection.
func (s *ResourceStore[R, D, P]) Records() []R {
	return slices.Clone(s.records)
}

// Find looks id up in the cache.
func (s *ResourceStore[R, D, P]) Find(id domain.RecordID) (R, bool) {
	for _, r := range s.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

func (s *ResourceStore[R, D, P]) Session() domain.EditSession[D] {
	return s.session
}

func (s *ResourceStore[R, D, P]) Feedback() domain.FeedbackState {
	return s.feedback.State()
}

// LastFailure returns the kind of the error currently shown, if any.
func (s *ResourceStore[R, D, P]) LastFailure() (apperrors.FailureKind, bool) {
	return s.feedback.LastFailure()
}

func (s *ResourceStore[R, D, P]) Name() string {
	return s.name
}

func (s *ResourceStore[R, D, P]) resetSession() {
	var empty D
	s.snapshot = empty
	s.session = domain.NewEditSession[D]()
}

func (s *ResourceStore[R, D, P]) fail(kind apperrors.FailureKind, message string, cause error, attrs ...any) error {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("error", cause.Error()), slog.String("kind", string(kind)))
	args = append(args, attrs...)
	s.logger.Error(message, args...)

	s.feedback.Fail(kind, message)
	return apperrors.NewOperationError(kind, message, cause)
}

func (s *ResourceStore[R, D, P]) discarded(op string) bool {
	if !s.closed.Load() {
		return false
	}
	s.logger.Debug("Store closed, dropping response", slog.String("operation", op))
	return true
}
