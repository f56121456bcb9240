package guard

import (
	"time"

	"github.com/pharmanet/pharmacy-console/internal/session"
)

type Decision int

const (
	Redirect Decision = iota
	Render
)

func (d Decision) String() string {
	if d == Render {
		return "render"
	}
	return "redirect"
}

// Decide returns the render-or-redirect decision for a view restricted to
// the allowed roles. It is a pure function of the session pair and the wall
// clock at evaluation time; callers re-evaluate it on every navigation and
// perform the redirect themselves. The redirect target is always the public
// root, whichever rule failed.
func Decide(token *session.Token, user *session.UserProfile, now time.Time, allowed ...session.Role) Decision {
	if token == nil || user == nil {
		return Redirect
	}
	if token.ExpiredAt(now) {
		return Redirect
	}

	for _, role := range allowed {
		if user.Info.Role == role {
			return Render
		}
	}
	return Redirect
}
