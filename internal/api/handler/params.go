package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hszk-dev/vidtube/internal/api/middleware"
	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// pathID parses the named URL parameter as an ObjectID. On failure it
// writes a 400 envelope and returns false; the handler must return.
func pathID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		BadRequest(w, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// actorFrom retrieves the authenticated actor. The auth middleware
// guarantees presence on every protected route; a miss means a wiring bug
// and surfaces as 401.
func actorFrom(w http.ResponseWriter, r *http.Request) (model.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return model.Actor{}, false
	}
	return actor, true
}

// pageFrom reads ?page= and ?limit= with the given defaults. Values are
// validated downstream by repository.Page.
func pageFrom(r *http.Request, defaultSize int64) repository.Page {
	page := repository.Page{Number: 1, Size: defaultSize}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			page.Number = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			page.Size = n
		}
	}
	return page
}
