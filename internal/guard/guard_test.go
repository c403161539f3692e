package guard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeSession scripts the session behavior for guard tests.
type fakeSession struct {
	authenticated   bool
	rehydrateDelay  time.Duration
	afterRehydrate  bool
	rehydrateCalled int
}

func (f *fakeSession) Authenticated() bool { return f.authenticated }

func (f *fakeSession) Rehydrate() error {
	f.rehydrateCalled++
	if f.rehydrateDelay > 0 {
		time.Sleep(f.rehydrateDelay)
	}
	f.authenticated = f.afterRehydrate
	return nil
}

func TestResolve_AuthenticatedSessionAuthorized(t *testing.T) {
	g := New(&fakeSession{authenticated: true})

	d := g.Resolve(context.Background(), "/build")
	assert.True(t, d.Authorized())
	assert.Empty(t, d.RedirectTo)
}

func TestResolve_RehydrationWithinGraceAuthorizes(t *testing.T) {
	session := &fakeSession{afterRehydrate: true}
	g := New(session, WithGrace(time.Second))

	d := g.Resolve(context.Background(), "/build")
	assert.True(t, d.Authorized())
	assert.Equal(t, 1, session.rehydrateCalled)
}

func TestResolve_LoggedOutRedirectsWithDestination(t *testing.T) {
	g := New(&fakeSession{})

	d := g.Resolve(context.Background(), "/build/save")
	assert.Equal(t, StateRedirecting, d.State)
	assert.Equal(t, "/login?redirect=%2Fbuild%2Fsave", d.RedirectTo)
}

func TestResolve_SlowRehydrationAbandonedAtGrace(t *testing.T) {
	session := &fakeSession{rehydrateDelay: 500 * time.Millisecond, afterRehydrate: true}
	g := New(session, WithGrace(10*time.Millisecond))

	start := time.Now()
	d := g.Resolve(context.Background(), "/build")

	assert.Equal(t, StateRedirecting, d.State)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestResolve_DecidesExactlyOnce(t *testing.T) {
	session := &fakeSession{}
	g := New(session)

	first := g.Resolve(context.Background(), "/build")
	assert.Equal(t, StateRedirecting, first.State)

	// A later login does not reopen the decision.
	session.authenticated = true
	second := g.Resolve(context.Background(), "/build")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, session.rehydrateCalled)
}

func TestResolve_RequirementDeniesAuthenticatedSession(t *testing.T) {
	g := New(&fakeSession{authenticated: true}, WithRequirement(func() bool { return false }))

	d := g.Resolve(context.Background(), "/admin")
	assert.Equal(t, StateRedirecting, d.State)
	assert.Equal(t, "/login?redirect=%2Fadmin", d.RedirectTo)
}

func TestRedirectPath_EmptyPath(t *testing.T) {
	assert.Equal(t, "/login", RedirectPath(""))
}
