// Package session owns the client's authentication state: the bearer token,
// the current user record, and the status the rest of the application keys
// off. It is the only component allowed to mutate that state; everything
// else sees copy-on-read snapshots.
//
// The local SQLite store is a write-through mirror: writes go to memory
// first and are then persisted, reads happen once per process at startup
// (Rehydrate). Once loaded, the in-memory session is authoritative.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avillagran/boletera/internal/client/models"
	"github.com/avillagran/boletera/internal/client/repositories/metadata"
	"github.com/avillagran/boletera/internal/client/services"
	"github.com/avillagran/boletera/internal/dbx"
	"github.com/avillagran/boletera/internal/logging"
)

// Status is the authentication state of the session.
type Status int

const (
	// StatusUnknown is the zero value; a constructed Manager never reports it.
	StatusUnknown Status = iota
	// StatusLoading holds during startup rehydration and while a login or
	// register call is in flight.
	StatusLoading
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

var (
	// ErrActionInFlight is returned when a login or register is issued while
	// another one is still running. Auth actions are serialized, not queued.
	ErrActionInFlight = errors.New("authentication action already in flight")

	// ErrNotAuthenticated is returned by operations that require a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Snapshot is a copy-on-read view of the session. User is nil exactly when
// Status != StatusAuthenticated.
type Snapshot struct {
	Token  string
	User   *models.User
	Status Status
}

// Manager is the single owner of session state. It mediates between the
// auth service and the local store, and satisfies api.TokenSource so the
// HTTP layer can read the current bearer token.
type Manager struct {
	auth services.AuthService
	db   *sql.DB
	log  logging.Logger

	mu       sync.Mutex
	inFlight bool
	epoch    uint64
	token    string
	user     *models.User
	status   Status
}

// NewManager constructs a Manager in the loading state. Call Rehydrate
// before handing the manager to anything that reads authentication state.
func NewManager(auth services.AuthService, db *sql.DB, log logging.Logger) *Manager {
	return &Manager{
		auth:   auth,
		db:     db,
		log:    log.With("component", "session"),
		status: StatusLoading,
	}
}

func (m *Manager) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(m.db)
}

// Rehydrate restores the session from the local store. It is a one-shot
// startup gate and never fails outward: a storage or parse error downgrades
// to unauthenticated, and a half-persisted session (token without user
// record, or the reverse) is cleared rather than trusted.
func (m *Manager) Rehydrate(ctx context.Context) {
	repo := m.repo()

	token, err := repo.Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		m.downgrade(ctx, "reading stored token", err)
		return
	}
	userData, err := repo.Get(ctx, metadata.KeyUserData)
	if err != nil {
		m.downgrade(ctx, "reading stored user record", err)
		return
	}

	if len(token) == 0 || len(userData) == 0 {
		if len(token) != 0 || len(userData) != 0 {
			m.log.Warn(ctx, "clearing partial persisted session")
			m.clearPersisted(ctx)
		}
		m.setUnauthenticated()
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		m.downgrade(ctx, "parsing stored user record", err)
		return
	}

	m.mu.Lock()
	m.token = string(token)
	m.user = &user
	m.status = StatusAuthenticated
	m.mu.Unlock()

	m.log.Info(ctx, "session rehydrated", "user_id", user.ID)
}

// Login authenticates with the backend and establishes the session. The
// email is normalized (trimmed, lower-cased) before being sent even though
// the form layer is expected to do the same. On failure the session is left
// as it was, except that status reverts to its pre-call value, and the
// error propagates to the caller unmodified.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	return m.login(ctx, email, password)
}

// Register creates the account and then immediately logs in with the same
// credentials to establish a session. Registration alone does not
// authenticate. If the implicit login fails after a successful
// registration, the account still exists and the error the caller sees is
// the login failure. The plaintext password is not retained past this call.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := m.auth.Register(ctx, req); err != nil {
		return err
	}

	return m.login(ctx, req.Email, req.Password)
}

// Logout clears the in-memory session first, so readers observe the
// logged-out state immediately, and then best-effort clears the persisted
// copies. A storage failure is logged, never surfaced, and never
// resurrects the session. Calling Logout on an already logged-out session
// is a no-op. A login or register still in flight when Logout runs has its
// result discarded: the logged-out state wins.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.epoch++
	m.token = ""
	m.user = nil
	m.status = StatusUnauthenticated
	m.mu.Unlock()

	m.clearPersisted(ctx)
	m.log.Info(ctx, "logged out")
}

// UpdateUser replaces the user record wholesale and re-persists it. The
// token is untouched. Without an authenticated session it returns
// ErrNotAuthenticated.
func (m *Manager) UpdateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	if m.status != StatusAuthenticated {
		m.mu.Unlock()
		m.log.Warn(ctx, "update user ignored: not authenticated")
		return ErrNotAuthenticated
	}
	u := user
	m.user = &u
	m.mu.Unlock()

	if err := m.persistUser(ctx, user); err != nil {
		m.log.Warn(ctx, "failed to persist updated user record", "error", err)
	}
	return nil
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Token: m.token, Status: m.status}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status == StatusAuthenticated
}

// Status returns the current session status.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// CurrentUser returns a copy of the authenticated user record.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Token returns the current bearer token, or "" when logged out. It
// satisfies the HTTP layer's TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// TokenExpiry reads the unverified exp claim of the bearer token, for
// display only. The token is treated as opaque everywhere else; there is
// no refresh protocol, an expired token simply makes the backend reject
// the next authenticated call.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	token := m.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// login is the guarded-section body shared by Login and Register.
func (m *Manager) login(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.Lock()
	prev := m.status
	started := m.epoch
	m.status = StatusLoading
	m.mu.Unlock()

	resp, err := m.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.mu.Lock()
		if m.epoch == started {
			m.status = prev
		}
		m.mu.Unlock()
		return err
	}

	user := resp.User()
	if err := m.persist(ctx, resp.Token, user); err != nil {
		// The store is only a mirror; memory stays authoritative and the
		// session simply won't survive a restart.
		m.log.Warn(ctx, "failed to persist session", "error", err)
	}

	m.mu.Lock()
	if m.epoch != started {
		// A logout ran while the credentials were on the wire. The
		// logged-out state wins; drop what was just persisted.
		m.mu.Unlock()
		m.clearPersisted(ctx)
		m.log.Info(ctx, "login result discarded after logout")
		return ErrNotAuthenticated
	}
	m.token = resp.Token
	u := user
	m.user = &u
	m.status = StatusAuthenticated
	m.mu.Unlock()

	m.log.Info(ctx, "logged in", "user_id", user.ID, "role", user.Role)
	return nil
}

func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return ErrActionInFlight
	}
	m.inFlight = true
	return nil
}

func (m *Manager) end() {
	m.mu.Lock()
	m.inFlight = false
	m.mu.Unlock()
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.status = StatusUnauthenticated
	m.mu.Unlock()
}

// downgrade handles a storage/parse failure during rehydration: log, clear
// whatever half-state is persisted, end up unauthenticated.
func (m *Manager) downgrade(ctx context.Context, what string, err error) {
	m.log.Error(ctx, "rehydration failed, downgrading to unauthenticated", "stage", what, "error", err)
	m.clearPersisted(ctx)
	m.setUnauthenticated()
}

// persist mirrors token and user record into the store in one transaction.
func (m *Manager) persist(ctx context.Context, token string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyUserData, data)
	})
}

func (m *Manager) persistUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.repo().Set(ctx, metadata.KeyUserData, data)
}

// clearPersisted removes both persisted entries; failures are logged only.
func (m *Manager) clearPersisted(ctx context.Context) {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, metadata.KeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, metadata.KeyUserData)
	})
	if err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
}
