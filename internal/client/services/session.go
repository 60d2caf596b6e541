package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/tokenstore"
	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/dmitrijs2005/findash/internal/logging"
	"github.com/dmitrijs2005/findash/internal/notify"
)

// Status is the phase of the session state machine.
type Status int

const (
	// StatusUnresolved: mounted, credential not yet checked.
	StatusUnresolved Status = iota
	// StatusResolving: identity lookup in flight.
	StatusResolving
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUnresolved:
		return "unresolved"
	case StatusResolving:
		return "resolving"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is an immutable snapshot of the session.
type State struct {
	Status     Status
	Identity   *models.User
	Credential string
	// Err is the user-facing message of the last failed auth action, if any.
	Err string
}

// Loading reports whether the identity is not known yet.
func (s State) Loading() bool {
	return s.Status == StatusUnresolved || s.Status == StatusResolving
}

func (s State) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Identity != nil
}

// AuthAPI is the part of the backend the session needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (models.Ack, error)
	Me(ctx context.Context) (models.User, error)
}

// Session owns the authentication state. It is the only writer of the token
// store; everything else reads snapshots via State or Subscribe.
//
// Every credential change bumps a generation counter. An identity lookup
// only lands if the generation it started under is still current, so a slow
// lookup can never overwrite a newer login or logout.
type Session struct {
	api   AuthAPI
	store tokenstore.Store
	log   logging.Logger

	mu    sync.Mutex
	state State
	gen   uint64
	hub   notify.Hub[State]
}

func NewSession(api AuthAPI, store tokenstore.Store, log logging.Logger) *Session {
	return &Session{
		api:   api,
		store: store,
		log:   log.With("component", "session"),
		state: State{Status: StatusUnresolved},
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe delivers every new snapshot; see notify.Hub for delivery rules.
func (s *Session) Subscribe() (<-chan State, func()) {
	return s.hub.Subscribe()
}

// Close releases subscribers.
func (s *Session) Close() {
	s.hub.Close()
}

// set replaces the state; callers hold s.mu.
func (s *Session) set(st State) {
	s.state = st
	s.hub.Publish(st)
}

// Start loads the persisted credential and resolves it into an identity.
// A failed resolution logs the user out and is returned for reporting.
func (s *Session) Start(ctx context.Context) error {
	cred, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored credential unreadable, starting logged out", "error", err)
		cred = ""
	}

	s.mu.Lock()
	s.gen++
	s.set(State{Status: StatusUnresolved, Credential: cred})
	s.mu.Unlock()

	return s.resolve(ctx)
}

// resolve looks up the identity for the current credential.
func (s *Session) resolve(ctx context.Context) error {
	s.mu.Lock()
	cred, gen := s.state.Credential, s.gen
	if cred == "" {
		s.set(State{Status: StatusUnauthenticated})
		s.mu.Unlock()
		return nil
	}
	s.set(State{Status: StatusResolving, Credential: cred})
	s.mu.Unlock()

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || cred != s.state.Credential {
		s.log.Debug(ctx, "discarding stale identity lookup", "credential", common.Fingerprint(cred))
		return nil
	}

	if err != nil {
		if cerr := s.store.Clear(ctx); cerr != nil {
			s.log.Error(ctx, "failed to clear rejected credential", "error", cerr)
		}
		s.gen++
		s.set(State{Status: StatusUnauthenticated})
		s.log.Info(ctx, "credential rejected, logged out", "credential", common.Fingerprint(cred), "error", err)
		return fmt.Errorf("resolve identity: %w", err)
	}

	s.set(State{Status: StatusAuthenticated, Identity: &user, Credential: cred})
	s.log.Info(ctx, "session resolved", "user_id", user.ID)
	return nil
}

// Login exchanges email and password for a credential. On success the
// identity from the response is used directly, without another lookup.
// On failure any credential is dropped and Err carries the message.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.fail(ctx, err)
		return fmt.Errorf("login: %w", err)
	}

	user := res.User
	s.mu.Lock()
	defer s.mu.Unlock()

	// the generation moves before the store is touched, so a lookup still
	// in flight for the old credential can no longer clear the new one
	s.gen++
	if err := s.store.Set(ctx, res.AccessToken); err != nil {
		s.failLocked(ctx, err)
		return fmt.Errorf("login: %w", err)
	}
	s.set(State{Status: StatusAuthenticated, Identity: &user, Credential: res.AccessToken})

	s.log.Info(ctx, "logged in", "user_id", user.ID)
	return nil
}

// Register creates the account and then logs in with the same credentials.
// Registration alone never authenticates.
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	if _, err := s.api.Register(ctx, username, email, password); err != nil {
		s.fail(ctx, err)
		return fmt.Errorf("register: %w", err)
	}
	return s.Login(ctx, email, password)
}

// LoginWithExternalToken adopts a credential handed over by an external
// identity provider and resolves it like a stored one.
func (s *Session) LoginWithExternalToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("empty external token")
	}

	s.mu.Lock()
	s.gen++
	if err := s.store.Set(ctx, token); err != nil {
		s.failLocked(ctx, err)
		s.mu.Unlock()
		return fmt.Errorf("store external token: %w", err)
	}
	s.set(State{Status: StatusUnresolved, Credential: token})
	s.mu.Unlock()

	s.log.Info(ctx, "external credential received", "credential", common.Fingerprint(token))
	return s.resolve(ctx)
}

// Logout drops the credential everywhere. Safe to call when logged out.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	err := s.store.Clear(ctx)
	s.set(State{Status: StatusUnauthenticated})
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// fail ends a failed login or registration: the credential is dropped and
// the session is unauthenticated with Err set.
func (s *Session) fail(ctx context.Context, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.failLocked(ctx, err)
}

// failLocked is fail for callers holding s.mu that already moved the generation.
func (s *Session) failLocked(ctx context.Context, err error) {
	if cerr := s.store.Clear(ctx); cerr != nil {
		s.log.Error(ctx, "failed to clear credential", "error", cerr)
	}
	s.set(State{Status: StatusUnauthenticated, Err: client.Message(err)})
}
