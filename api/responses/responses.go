package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"github.com/stockroomhq/stockroom-backend/pkg/pagination"
	"github.com/stockroomhq/stockroom-backend/pkg/types"
)

// WriteData emits a bare JSON payload (detail reads, stats).
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// WriteMessage emits the {message, data} mutation envelope.
func WriteMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, types.MessageEnvelope{Message: message, Data: data})
}

// WriteList emits the {data, meta} pagination envelope.
func WriteList(w http.ResponseWriter, data any, meta pagination.Meta) {
	writeJSON(w, http.StatusOK, types.ListEnvelope{Data: data, Meta: meta})
}

// WriteNoContent emits an empty 204.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError is the single place errors become HTTP responses. It maps the
// error's kind to a status via pkg/errors metadata, surfaces call-site
// messages only for client-safe kinds, and logs the full chain server-side.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeInvalidID,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeDuplicate,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeForbidden:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorEnvelope{Error: msg}
	if meta.DetailsAllowed {
		payload.Details = typed.Details()
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"error_code":  string(typed.Code()),
			"http_status": meta.HTTPStatus,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
