package middleware

import (
	"frontdesk/infras/backend"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Session builds the caller's backend session from the bearer token.
type Session interface {
	Session(http.Handler) http.Handler
}

type sessionImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewSessionMiddleware(jwtService jwt.JWT, otel otel.Otel) Session {
	return &sessionImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Session never rejects a request. The token is forwarded to the backend, which owns
// authentication; the user id is read from the token's claims when they can be decoded.
func (m *sessionImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")

		session := backend.Session{}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err == nil && tokenString != "" {
			session.Token = tokenString

			claims, err := m.jwtService.Inspect(tokenString)
			if err == nil {
				session.UserID, err = claims.User()
			}

			if err != nil {
				log.Debug().Err(err).Msg("token claims unreadable, forwarding token without user")
			}
		}

		scope.SetAttribute("session", session.String())
		scope.End()

		next.ServeHTTP(writer, request.WithContext(backend.ContextWithSession(ctx, session)))
	})
}
