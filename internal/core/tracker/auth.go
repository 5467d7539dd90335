package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports"
)

const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
	msgLoggedIn           = "Logged in"
	msgRegistered         = "Account created, please log in"
	msgLoggedOut          = "Logged out"
)

var errMissingToken = errors.New("login response carried no token")

// AuthSession exchanges credentials with the remote store and keeps the
// resulting bearer token in the injected credential provider.
type AuthSession struct {
	gateway     ports.AuthGateway
	credentials ports.CredentialProvider
	feedback    *FeedbackChannel
	logger      *slog.Logger
}

func NewAuthSession(gateway ports.AuthGateway, credentials ports.CredentialProvider, logger *slog.Logger) *AuthSession {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthSession{
		gateway:     gateway,
		credentials: credentials,
		feedback:    NewFeedbackChannel(),
		logger:      logger.With(slog.String("component", "auth")),
	}
}

// Login accepts only a 200 answer carrying a token; the token is stored for
// every later request.
func (a *AuthSession) Login(ctx context.Context, email, password string) error {
	token, status, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		return a.fail(msgLoginFailed, err)
	}
	if status != http.StatusOK {
		return a.fail(msgLoginFailed, fmt.Errorf("%w: %d", apperrors.ErrUnexpectedStatus, status))
	}
	if token == "" {
		return a.fail(msgLoginFailed, errMissingToken)
	}
	if err := a.credentials.Set(token); err != nil {
		return a.fail(msgLoginFailed, fmt.Errorf("storing token: %w", err))
	}
	a.logger.Info("Login succeeded")
	a.feedback.Succeed(msgLoggedIn)
	return nil
}

// Register accepts only a 201 answer.
func (a *AuthSession) Register(ctx context.Context, username, email, password string) error {
	status, err := a.gateway.Register(ctx, username, email, password)
	if err != nil {
		return a.fail(msgRegistrationFailed, err)
	}
	if status != http.StatusCreated {
		return a.fail(msgRegistrationFailed, fmt.Errorf("%w: %d", apperrors.ErrUnexpectedStatus, status))
	}
	a.logger.Info("Registration succeeded", slog.String("username", username))
	a.feedback.Succeed(msgRegistered)
	return nil
}

// Logout forgets the stored token. Later requests go out unauthenticated.
func (a *AuthSession) Logout() error {
	if err := a.credentials.Clear(); err != nil {
		return a.fail("Logout failed", fmt.Errorf("clearing token: %w", err))
	}
	a.feedback.Succeed(msgLoggedOut)
	return nil
}

func (a *AuthSession) Authenticated() bool {
	_, ok := a.credentials.Get()
	return ok
}

func (a *AuthSession) Feedback() domain.FeedbackState {
	return a.feedback.State()
}

func (a *AuthSession) fail(message string, cause error) error {
	a.logger.Error(message, slog.String("error", cause.Error()))
	a.feedback.Fail(apperrors.AuthFailure, message)
	return apperrors.NewOperationError(apperrors.AuthFailure, message, cause)
}
