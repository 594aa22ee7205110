package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createItemBody struct {
	ItemName    string   `json:"itemName" validate:"required,min=2,max=100"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description" validate:"required,min=5,max=500"`
	Category    string   `json:"category" validate:"required,min=2,max=50"`
}

func (b *createItemBody) Trim() {
	b.ItemName = strings.TrimSpace(b.ItemName)
	b.Description = strings.TrimSpace(b.Description)
	b.Category = strings.TrimSpace(b.Category)
}

func decodeBody(t *testing.T, payload string) error {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(payload))
	var body createItemBody
	return DecodeJSONBody(req, &body)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	err := decodeBody(t, `{"itemName":"Test Product","quantity":4,"price":9.99,"description":"abcde","category":"AB"}`)
	require.NoError(t, err)
}

func TestDecodeJSONBodyCollectsSingleViolation(t *testing.T) {
	err := decodeBody(t, `{"itemName":"Test Product","quantity":-5,"price":9.99,"description":"abcde","category":"AB"}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().([]types.FieldError)
	require.True(t, ok)
	require.Len(t, details, 1, "only the quantity violation should be reported")
	assert.Equal(t, "quantity", details[0].Field)
	assert.Equal(t, "must be at least 0", details[0].Message)
}

func TestDecodeJSONBodyCollectsAllViolations(t *testing.T) {
	err := decodeBody(t, `{"itemName":"x","quantity":1,"price":-1,"description":"abc","category":"A"}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().([]types.FieldError)
	require.True(t, ok)
	require.Len(t, details, 4)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"itemName", "price", "description", "category"}, fields)
}

func TestDecodeJSONBodyTrimsBeforeLengthCheck(t *testing.T) {
	// "  A  " is one character after trimming, below the two-character floor.
	err := decodeBody(t, `{"itemName":"  A  ","quantity":1,"price":1,"description":"valid description","category":"Tools"}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().([]types.FieldError)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "itemName", details[0].Field)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	err := decodeBody(t, `{"itemName":"Test Product","quantity":1,"price":1,"description":"abcde","category":"AB","extra":true}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	err := decodeBody(t, `{"itemName":`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyReportsMissingRequiredFields(t *testing.T) {
	err := decodeBody(t, `{}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().([]types.FieldError)
	require.True(t, ok)
	require.Len(t, details, 5)
	for _, d := range details {
		assert.Equal(t, "is required", d.Message)
	}
}
