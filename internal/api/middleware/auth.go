package middleware

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/domain/model"
)

const actorHeader = "X-User-Id"

const actorKey ctxKey = iota + 100

// Auth extracts the authenticated user identity set by the upstream auth
// gateway and attaches it to the request context. Requests without a valid
// identity are rejected before reaching any handler.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(actorHeader)
		if raw == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, model.Actor{ID: id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFrom retrieves the authenticated actor from context. The second
// return is false when the request did not pass through Auth.
func ActorFrom(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(model.Actor)
	return actor, ok
}
