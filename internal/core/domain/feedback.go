package domain

// FeedbackState is the message pair shown next to a form. Empty means absent.
type FeedbackState struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

func (f FeedbackState) HasError() bool { return f.Error != "" }

func (f FeedbackState) HasSuccess() bool { return f.Success != "" }
