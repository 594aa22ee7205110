package types

import "github.com/stockroomhq/stockroom-backend/pkg/pagination"

// MessageEnvelope wraps mutation responses: {message, data}.
type MessageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ListEnvelope wraps paginated list responses: {data, meta}.
type ListEnvelope struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the single error shape emitted by the API.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// FieldError is one violated constraint inside a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
