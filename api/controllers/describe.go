package controllers

import (
	"net/http"
	"strings"

	"github.com/stockroomhq/stockroom-backend/api/responses"
	"github.com/stockroomhq/stockroom-backend/api/validators"
	"github.com/stockroomhq/stockroom-backend/internal/describe"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
)

type generateDescriptionRequest struct {
	ItemName string `json:"itemName" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (r *generateDescriptionRequest) Trim() {
	r.ItemName = strings.TrimSpace(r.ItemName)
	r.Category = strings.TrimSpace(r.Category)
}

// GenerateDescription handles POST /api/items/generate-description. It is a
// pure text operation: nothing is persisted.
func GenerateDescription(gen describe.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDescriptionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		description, err := gen.Generate(r.Context(), req.ItemName, req.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, http.StatusOK, map[string]string{"description": description})
	}
}
