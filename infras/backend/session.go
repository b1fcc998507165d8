package backend

import (
	"context"
	"frontdesk/shared/constant"
	"strconv"
)

// Session is the caller's identity towards the hotel backend. It is passed explicitly into every
// backend call; an empty token is forwarded as-is and left for the backend to reject.
type Session struct {
	Token  string
	UserID int64
}

// NewSession builds a session for token. UserID stays zero until something learns it.
func NewSession(token string) Session {
	return Session{Token: token}
}

// Authorization renders the Authorization header value, empty without a token.
func (s Session) Authorization() string {
	if s.Token == "" {
		return constant.Empty
	}

	return constant.BearerPrefix + s.Token
}

// HasUser reports whether the session knows which backend user it acts for.
func (s Session) HasUser() bool {
	return s.UserID > 0
}

// String identifies the session in logs without leaking the token.
func (s Session) String() string {
	if !s.HasUser() {
		return "anonymous"
	}

	return "user:" + strconv.FormatInt(s.UserID, 10)
}

// ContextWithSession stores s on ctx for handlers further down the chain.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, s)
}

// SessionFromContext returns the request's session, anonymous when none was stored.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(constant.ContextKeySession).(Session)

	return s
}
