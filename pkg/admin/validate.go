package admin

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var paramValidator = validator.New(validator.WithRequiredStructEnabled())

// V returns the shared parameter validator.
func V() *validator.Validate {
	return paramValidator
}

// validateParams checks an operation's parameter struct against its declared
// shape. It runs before any transport activity; a violation rejects the call
// with ErrValidation naming the first offending field.
func validateParams(params any) error {
	err := V().Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return ErrValidation.Msg(fmt.Sprintf("field %q failed on the %q constraint", f.Field(), f.Tag()))
	}
	return ErrValidation.Err(err)
}
