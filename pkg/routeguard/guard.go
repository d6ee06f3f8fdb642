package routeguard

import (
	"sync"
)

// State is the session/profile gate the navigation layer consults. There
// is no terminal state; every process start re-enters Loading.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticatedIncomplete
	StateAuthenticatedComplete
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateUnauthenticated:
		return "Unauthenticated"
	case StateAuthenticatedIncomplete:
		return "AuthenticatedIncomplete"
	case StateAuthenticatedComplete:
		return "AuthenticatedComplete"
	}
	return "Unknown"
}

type DecisionKind int

const (
	// Defer renders a neutral placeholder; no navigation decision yet.
	Defer DecisionKind = iota
	Allow
	// AllowWithBanner allows the view but keeps the profile-completion
	// banner up until the profile gains a location.
	AllowWithBanner
	RedirectToSignIn
)

type Decision struct {
	Kind DecisionKind
}

// Guard tracks the authenticated identity and decides, per navigation
// attempt, whether to show the requested view, redirect to sign-in, or
// defer. Completeness resolutions apply in completion order: the most
// recent fetch completion wins, and resolutions started before the latest
// session change are discarded.
type Guard struct {
	mu          sync.Mutex
	state       State
	identity    string
	returnPath  string
	sessionSeq  uint64
	handlers    map[int]func(State)
	nextHandler int
}

func New() *Guard {
	return &Guard{
		state:    StateLoading,
		handlers: make(map[int]func(State)),
	}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) Identity() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identity
}

// Subscribe registers a handler invoked on every state transition. The
// returned func unregisters it; callers must invoke it on teardown.
func (g *Guard) Subscribe(handler func(State)) func() {
	g.mu.Lock()
	id := g.nextHandler
	g.nextHandler++
	g.handlers[id] = handler
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.handlers, id)
		g.mu.Unlock()
	}
}

// BeginSessionChange moves the machine back to Loading and invalidates any
// in-flight completeness resolution. The returned token must accompany the
// matching Resolve call.
func (g *Guard) BeginSessionChange() uint64 {
	g.mu.Lock()
	g.sessionSeq++
	token := g.sessionSeq
	g.setStateLocked(StateLoading)
	g.mu.Unlock()
	return token
}

// ResolveNone settles a session change as unauthenticated.
func (g *Guard) ResolveNone(token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token != g.sessionSeq {
		return
	}
	g.identity = ""
	g.setStateLocked(StateUnauthenticated)
}

// ResolveSession settles a session change with an identity and the result
// of its profile-completeness fetch. A fetch error resolves incomplete,
// never complete, so the completion prompt is not silently hidden.
func (g *Guard) ResolveSession(token uint64, identity string, complete bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token != g.sessionSeq {
		return
	}
	g.identity = identity
	if err != nil {
		complete = false
	}
	if complete {
		g.setStateLocked(StateAuthenticatedComplete)
	} else {
		g.setStateLocked(StateAuthenticatedIncomplete)
	}
}

// ProfileSaved re-evaluates gating after a profile write. Saving a
// non-empty location moves Incomplete to Complete; clearing it moves the
// machine back to Incomplete rather than staying Complete.
func (g *Guard) ProfileSaved(locationPresent bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case StateAuthenticatedIncomplete:
		if locationPresent {
			g.setStateLocked(StateAuthenticatedComplete)
		}
	case StateAuthenticatedComplete:
		if !locationPresent {
			g.setStateLocked(StateAuthenticatedIncomplete)
		}
	}
}

// Decide gates one navigation attempt to path. A protected path requested
// while unauthenticated records the path for the post-login redirect.
func (g *Guard) Decide(path string, protected bool) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateLoading:
		return Decision{Kind: Defer}
	case StateUnauthenticated:
		if protected {
			g.returnPath = path
			return Decision{Kind: RedirectToSignIn}
		}
		return Decision{Kind: Allow}
	case StateAuthenticatedIncomplete:
		if protected {
			return Decision{Kind: AllowWithBanner}
		}
		return Decision{Kind: Allow}
	default:
		return Decision{Kind: Allow}
	}
}

// ConsumeReturnPath yields the path remembered by the last redirected
// navigation and clears it. Empty when nothing was remembered.
func (g *Guard) ConsumeReturnPath() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	path := g.returnPath
	g.returnPath = ""
	return path
}

func (g *Guard) setStateLocked(next State) {
	if g.state == next {
		return
	}
	g.state = next
	for _, handler := range g.handlers {
		handler(next)
	}
}
