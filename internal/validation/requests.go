package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"notblank,max=255"`
	Email    string `json:"email" validate:"notblank,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// ItemRequest is the body of POST /items and PUT /items/:id.
// An absent description decodes to ""; an explicit null is rejected.
type ItemRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// UnmarshalJSON decodes an item body, returning an *Error when description
// is null.
func (r *ItemRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		if strings.EqualFold(key, "description") && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return Errorf("description", "description must be a string")
		}
	}

	type plain ItemRequest
	return json.Unmarshal(data, (*plain)(r))
}
