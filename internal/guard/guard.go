// Package guard gates protected commands on the session. A guard
// resolves exactly once per invocation: it gives session rehydration a
// bounded grace window, then lands on authorized or redirecting and
// stays there. A slow disk or a flapping session cannot make it flip
// back to checking.
package guard

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// State is the guard's lifecycle position.
type State int

const (
	// StateChecking is the initial state, before a decision.
	StateChecking State = iota

	// StateAuthorized admits the request.
	StateAuthorized

	// StateRedirecting denies the request and carries the login
	// destination.
	StateRedirecting
)

// String renders the state for logs.
func (s State) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateRedirecting:
		return "redirecting"
	default:
		return "checking"
	}
}

// defaultGrace bounds how long a resolve waits for rehydration.
const defaultGrace = 2 * time.Second

// loginPath is where denied requests are pointed.
const loginPath = "/login"

// Session is the slice of the session store the guard needs.
type Session interface {
	Authenticated() bool
	Rehydrate() error
}

// Decision is the guard's verdict.
type Decision struct {
	State      State
	RedirectTo string
}

// Authorized reports whether the request may proceed.
func (d Decision) Authorized() bool {
	return d.State == StateAuthorized
}

// Guard protects a destination path.
type Guard struct {
	session Session
	grace   time.Duration
	require func() bool

	once     sync.Once
	decision Decision
}

// Option configures a Guard.
type Option func(*Guard)

// WithGrace overrides the rehydration grace window.
func WithGrace(d time.Duration) Option {
	return func(g *Guard) {
		g.grace = d
	}
}

// WithRequirement adds a check beyond authentication, such as an admin
// role. A logged-in session that fails the requirement is redirected
// the same as a logged-out one.
func WithRequirement(check func() bool) Option {
	return func(g *Guard) {
		g.require = check
	}
}

// New creates a guard over the session.
func New(session Session, opts ...Option) *Guard {
	g := &Guard{
		session: session,
		grace:   defaultGrace,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve decides whether the request for path may proceed. The first
// call decides; every later call returns the same decision.
func (g *Guard) Resolve(ctx context.Context, path string) Decision {
	g.once.Do(func() {
		g.decision = g.decide(ctx, path)
	})
	return g.decision
}

// decide runs the actual check, giving rehydration its grace window
// when the session is not yet authenticated.
func (g *Guard) decide(ctx context.Context, path string) Decision {
	if !g.session.Authenticated() {
		g.awaitRehydration(ctx)
	}

	if !g.session.Authenticated() {
		return Decision{State: StateRedirecting, RedirectTo: RedirectPath(path)}
	}
	if g.require != nil && !g.require() {
		return Decision{State: StateRedirecting, RedirectTo: RedirectPath(path)}
	}
	return Decision{State: StateAuthorized}
}

// awaitRehydration attempts a session restore, bounded by the grace
// window and the caller's context. A rehydration that overruns the
// window is abandoned; the guard decides on what it has.
func (g *Guard) awaitRehydration(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, g.grace)
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = g.session.Rehydrate()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// RedirectPath builds the login destination that preserves where the
// user was headed.
func RedirectPath(path string) string {
	if path == "" {
		return loginPath
	}
	return loginPath + "?redirect=" + url.QueryEscape(path)
}
