package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
	"github.com/stockroomhq/stockroom-backend/pkg/types"
)

// ParseQueryInt reads an integer query parameter, falling back to
// defaultVal when absent.
func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails([]types.FieldError{{Field: key, Message: "must be numeric"}})
	}
	return value, nil
}

// ParseQueryString reads a trimmed string query parameter.
func ParseQueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// ParsePagination reads page/limit query parameters. Out-of-range values
// are clamped, not rejected.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", 1)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := ParseQueryInt(r, "limit", 0)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}
