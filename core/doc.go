// Package session owns the lifecycle of one streaming search session: it
// consumes the event stream produced by a search client, folds each event
// into an evolving state snapshot and guarantees that at most one session is
// live at a time.
//
// Supersession: starting a new query or calling Reset invalidates the
// previous session's liveness token. The superseded transport is asked to
// stop cooperatively, but correctness does not depend on it stopping; any
// event still delivered under a stale token is ignored before it can touch
// state. The token check is the actual backstop.
package session
