package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/auranode/auranode/internal/model"
	"github.com/auranode/auranode/internal/panel"
	"github.com/auranode/auranode/internal/session"
)

// fakePanel implements PanelAPI with per-test behavior and call counting.
type fakePanel struct {
	createCalls int
	findCalls   int
	listCalls   int

	createFn func(panel.CreateUserInput) (*model.PanelUser, error)
	findFn   func(string) (*model.PanelUser, error)
	listFn   func(int) ([]model.PanelServer, error)
}

func (f *fakePanel) CreateUser(_ context.Context, in panel.CreateUserInput) (*model.PanelUser, error) {
	f.createCalls++
	return f.createFn(in)
}

func (f *fakePanel) FindUserByEmail(_ context.Context, email string) (*model.PanelUser, error) {
	f.findCalls++
	return f.findFn(email)
}

func (f *fakePanel) ListServersForUser(_ context.Context, userID int) ([]model.PanelServer, error) {
	f.listCalls++
	return f.listFn(userID)
}

type ServiceSuite struct {
	suite.Suite
	panel    *fakePanel
	sessions *session.MemoryStore
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.panel = &fakePanel{}
	s.sessions = session.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.panel, s.sessions, Config{PanelURL: "https://panel.example.com"}, logger)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterInvalidInputSkipsPanel() {
	err := s.service.Register(s.ctx, RegistrationInput{Username: "steve"})
	s.Require().Error(err)
	s.Equal("Please fill in all fields.", err.Error())
	s.Zero(s.panel.createCalls)
}

func (s *ServiceSuite) TestRegisterForwardsValidInput() {
	var got panel.CreateUserInput
	s.panel.createFn = func(in panel.CreateUserInput) (*model.PanelUser, error) {
		got = in
		return &model.PanelUser{ID: 7}, nil
	}

	err := s.service.Register(s.ctx, RegistrationInput{
		FirstName: "Steve",
		LastName:  "Miner",
		Username:  "steve",
		Email:     "steve@example.com",
		Password:  "hunter22",
	})
	s.Require().NoError(err)

	s.Equal(1, s.panel.createCalls)
	s.Equal("steve@example.com", got.Email)
	s.Equal("Steve", got.FirstName)
}

func (s *ServiceSuite) TestRegisterSurfacesPanelRejection() {
	s.panel.createFn = func(panel.CreateUserInput) (*model.PanelUser, error) {
		return nil, &panel.Error{Kind: panel.KindRejected, Message: "The email has already been taken."}
	}

	err := s.service.Register(s.ctx, RegistrationInput{
		FirstName: "Steve", LastName: "Miner", Username: "steve",
		Email: "steve@example.com", Password: "hunter22",
	})
	s.Require().Error(err)
	s.Equal("The email has already been taken.", err.Error())
}

// Login tests

func (s *ServiceSuite) TestLoginCreatesSession() {
	s.panel.findFn = func(email string) (*model.PanelUser, error) {
		return &model.PanelUser{ID: 7, Email: email, Username: "steve"}, nil
	}

	sess, err := s.service.Login(s.ctx, "steve@example.com")
	s.Require().NoError(err)

	s.NotEmpty(sess.Token)
	s.Equal(7, sess.User.ID)
	s.True(sess.ExpiresAt.After(sess.CreatedAt))

	stored, err := s.sessions.Get(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.Equal(7, stored.User.ID)
}

func (s *ServiceSuite) TestLoginUnknownEmailLeavesNoSession() {
	s.panel.findFn = func(string) (*model.PanelUser, error) {
		return nil, &panel.Error{Kind: panel.KindNotFound, Message: "User not found."}
	}

	_, err := s.service.Login(s.ctx, "ghost@example.com")
	s.Require().ErrorIs(err, ErrNoAccount)
	s.Equal("No account found with that email.", err.Error())
}

func (s *ServiceSuite) TestLoginPanelDownSurfacesConnectivityMessage() {
	s.panel.findFn = func(string) (*model.PanelUser, error) {
		return nil, &panel.Error{Kind: panel.KindUnavailable, Message: "Could not connect to the panel to verify user."}
	}

	_, err := s.service.Login(s.ctx, "steve@example.com")
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoAccount)
	s.Equal("Could not connect to the panel to verify user.", err.Error())
}

// Logout tests

func (s *ServiceSuite) TestLogoutDestroysSession() {
	s.panel.findFn = func(email string) (*model.PanelUser, error) {
		return &model.PanelUser{ID: 7, Email: email}, nil
	}

	sess, err := s.service.Login(s.ctx, "steve@example.com")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, sess.Token))

	_, err = s.service.SessionByToken(s.ctx, sess.Token)
	s.ErrorIs(err, model.ErrSessionNotFound)

	// Logging out twice does not error
	s.NoError(s.service.Logout(s.ctx, sess.Token))
}

// Dashboard tests

func (s *ServiceSuite) TestDashboardServersBuildsManagementLinks() {
	id := uuid.MustParse("d3aac109-e5a0-4331-b03e-3454f7e136dc")
	s.panel.listFn = func(userID int) ([]model.PanelServer, error) {
		s.Equal(7, userID)
		return []model.PanelServer{{ID: 1, UUID: id, Name: "Survival SMP"}}, nil
	}

	servers, err := s.service.DashboardServers(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(servers, 1)

	s.Equal("Survival SMP", servers[0].Name)
	s.Equal("https://panel.example.com/server/d3aac109-e5a0-4331-b03e-3454f7e136dc", servers[0].PanelURL)
}

func (s *ServiceSuite) TestDashboardServersPropagatesFetchFailure() {
	s.panel.listFn = func(int) ([]model.PanelServer, error) {
		return nil, errors.New("boom")
	}

	_, err := s.service.DashboardServers(s.ctx, 7)
	s.Error(err)
}
