// Package account orchestrates registration, login, logout and dashboard
// flows by combining the validation rules, the panel client and the
// session store. Errors returned by this package carry user-facing
// messages; handlers surface them as flash notices and never as raw
// error pages.
package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/auranode/auranode/internal/model"
	"github.com/auranode/auranode/internal/panel"
	"github.com/auranode/auranode/internal/session"
)

// ErrNoAccount is returned by Login when no panel account matches the email.
var ErrNoAccount = errors.New("No account found with that email.")

// PanelAPI is the subset of the panel client the account flows use.
type PanelAPI interface {
	CreateUser(ctx context.Context, input panel.CreateUserInput) (*model.PanelUser, error)
	FindUserByEmail(ctx context.Context, email string) (*model.PanelUser, error)
	ListServersForUser(ctx context.Context, userID int) ([]model.PanelServer, error)
}

// RegistrationInput is the transient value object for one registration
// request. It is forwarded to the panel only if validation accepts it and
// is never persisted locally.
type RegistrationInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// DashboardServer pairs a panel server with its management link.
type DashboardServer struct {
	model.PanelServer
	PanelURL string
}

// Config holds configuration for the account service.
type Config struct {
	// PanelURL is the public panel base URL used to build server
	// management links.
	PanelURL string
	// SessionTTL is how long a login lasts.
	SessionTTL time.Duration
}

// Service is the account flow controller.
type Service struct {
	panel    PanelAPI
	sessions session.Store
	cfg      Config
	logger   *slog.Logger

	now func() time.Time // overridable for tests
}

// New creates an account service.
func New(panelAPI PanelAPI, sessions session.Store, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &Service{
		panel:    panelAPI,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Register validates the input and creates the account on the panel.
// Registration never creates a session; login is a separate step.
func (s *Service) Register(ctx context.Context, input RegistrationInput) error {
	if err := validateRegistration(input); err != nil {
		return err
	}

	_, err := s.panel.CreateUser(ctx, panel.CreateUserInput{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  input.Password,
	})
	return err
}

// Login authenticates by panel email lookup and creates a session bound to
// the returned user. The panel's application API exposes no credential
// check, so presence of the account is the whole proof here.
func (s *Service) Login(ctx context.Context, email string) (*model.Session, error) {
	user, err := s.panel.FindUserByEmail(ctx, email)
	if err != nil {
		if pe, ok := panel.AsError(err); ok && pe.Kind == panel.KindNotFound {
			return nil, ErrNoAccount
		}
		return nil, err
	}

	now := s.now()
	sess := &model.Session{
		Token:     session.NewToken(),
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		s.logger.Error("failed to save session",
			slog.Int("user_id", user.ID), slog.String("error", err.Error()))
		return nil, errors.New("Could not log you in. Please try again.")
	}

	return sess, nil
}

// Logout destroys the session. Destroying an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// SessionByToken returns the live session for a token, or
// model.ErrSessionNotFound.
func (s *Service) SessionByToken(ctx context.Context, token string) (*model.Session, error) {
	return s.sessions.Get(ctx, token)
}

// DashboardServers lists the user's servers, each enriched with a
// management link into the panel. Callers render an empty list on error
// rather than failing the page.
func (s *Service) DashboardServers(ctx context.Context, userID int) ([]DashboardServer, error) {
	servers, err := s.panel.ListServersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DashboardServer, 0, len(servers))
	for _, srv := range servers {
		out = append(out, DashboardServer{
			PanelServer: srv,
			PanelURL:    s.cfg.PanelURL + "/server/" + srv.UUID.String(),
		})
	}
	return out, nil
}
