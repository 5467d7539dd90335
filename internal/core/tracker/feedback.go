package tracker

import (
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// FeedbackChannel holds the success/error messages of one store.
//
// Setting an error leaves a success message already on screen untouched,
// while setting a success always clears the error. Only Clear wipes both.
// The two message regions are rendered independently, so this asymmetry is
// visible to users and is kept as is.
type FeedbackChannel struct {
	state       domain.FeedbackState
	lastFailure apperrors.FailureKind
}

func NewFeedbackChannel() *FeedbackChannel {
	return &FeedbackChannel{}
}

// Fail records a failure message. Success is sticky.
func (f *FeedbackChannel) Fail(kind apperrors.FailureKind, message string) {
	f.state.Error = message
	f.lastFailure = kind
}

// Succeed records a success message and drops any error.
func (f *FeedbackChannel) Succeed(message string) {
	f.state.Success = message
	f.state.Error = ""
	f.lastFailure = ""
}

// Clear drops both messages.
func (f *FeedbackChannel) Clear() {
	f.state = domain.FeedbackState{}
	f.lastFailure = ""
}

func (f *FeedbackChannel) State() domain.FeedbackState {
	return f.state
}

// LastFailure returns the kind of the error currently shown, if any.
func (f *FeedbackChannel) LastFailure() (apperrors.FailureKind, bool) {
	return f.lastFailure, f.state.Error != ""
}
