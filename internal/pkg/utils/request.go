package utils

import (
	"medportal-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseAndValidateBody decodes a JSON request body into dst and validates it.
func ParseAndValidateBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
