package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

// Status is the resolution state of the process-wide session.
type Status int

const (
	// StatusUnresolved means the startup session check has not completed.
	StatusUnresolved Status = iota
	// StatusAuthenticated means a valid session exists.
	StatusAuthenticated
	// StatusAnonymous means no session exists; consumers should route to login.
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unresolved"
	}
}

type authClient interface {
	SetToken(token string)
	AuthRefresh(ctx context.Context) (*store.AuthResult, error)
	AuthWithPassword(ctx context.Context, identity, password string) (*store.AuthResult, error)
}

// Manager owns the process-wide session state: initialized at process start,
// updated on login/logout, read-only for consumers. State changes are
// published to subscribers; nothing mutates the session from outside.
type Manager struct {
	client authClient
	tokens TokenStore
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	status Status
	user   *models.User
	subs   []chan Status
}

// NewManager constructs a Manager in the unresolved state.
func NewManager(client authClient, tokens TokenStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		client: client,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		status: StatusUnresolved,
	}
}

// Resolve performs the one-time startup session check: a persisted token is
// validated against the record service, anything else resolves anonymous.
// Resolve never fails the process; failures are logged and treated as "no
// session".
func (m *Manager) Resolve(ctx context.Context) {
	token := ""
	if m.tokens != nil {
		stored, err := m.tokens.Load(ctx)
		if err != nil {
			m.logger.Warn("session token load failed", zap.Error(err))
		} else {
			token = stored
		}
	}

	if token == "" || tokenExpired(token, m.now()) {
		m.setState(StatusAnonymous, nil)
		return
	}

	m.client.SetToken(token)
	result, err := m.client.AuthRefresh(ctx)
	if err != nil {
		m.logger.Warn("stored session rejected", zap.Error(err))
		m.client.SetToken("")
		m.clearStoredToken(ctx)
		m.setState(StatusAnonymous, nil)
		return
	}

	m.persistToken(ctx, result.Token)
	user := result.Record
	m.setState(StatusAuthenticated, &user)
}

// Login authenticates against the record service and publishes the new state.
func (m *Manager) Login(ctx context.Context, identity, password string) (*models.User, error) {
	result, err := m.client.AuthWithPassword(ctx, identity, password)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == appErrors.ErrValidation.Status || appErr.Status == appErrors.ErrUnauthorized.Status {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, err
	}

	m.persistToken(ctx, result.Token)
	user := result.Record
	m.setState(StatusAuthenticated, &user)
	return &user, nil
}

// Logout clears the session and publishes the anonymous state.
func (m *Manager) Logout(ctx context.Context) {
	m.client.SetToken("")
	m.clearStoredToken(ctx)
	m.setState(StatusAnonymous, nil)
}

// Status returns the current session status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// CurrentUserID returns the authenticated user id, or an empty string.
func (m *Manager) CurrentUserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return ""
	}
	return m.user.ID
}

// Subscribe returns a channel receiving status transitions. The channel is
// buffered; a slow consumer drops notifications rather than blocking the
// session.
func (m *Manager) Subscribe() <-chan Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Status, 4)
	m.subs = append(m.subs, ch)
	return ch
}

func (m *Manager) setState(status Status, user *models.User) {
	m.mu.Lock()
	m.status = status
	m.user = user
	subs := make([]chan Status, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- status:
		default:
		}
	}
}

func (m *Manager) persistToken(ctx context.Context, token string) {
	if m.tokens == nil {
		return
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		m.logger.Warn("session token persist failed", zap.Error(err))
	}
}

func (m *Manager) clearStoredToken(ctx context.Context) {
	if m.tokens == nil {
		return
	}
	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.Warn("session token clear failed", zap.Error(err))
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the record service's job.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
