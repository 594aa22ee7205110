package validators

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
)

// PathID extracts a 24-hex entity identifier from the route. The syntax
// check runs here, before any repository call, so malformed ids never reach
// the store.
func PathID(r *http.Request, param string) (string, error) {
	id := chi.URLParam(r, param)
	if !identifier.IsValid(id) {
		return "", pkgerrors.New(pkgerrors.CodeInvalidID, "invalid id format")
	}
	return id, nil
}
