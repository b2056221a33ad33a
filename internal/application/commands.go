package application

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginCommand struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Validate rejects malformed credentials locally, before anything reaches
// the session store or the network.
func (c LoginCommand) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	for _, fieldError := range fieldErrors {
		switch fieldError.Field() {
		case "Email":
			if fieldError.Tag() == "email" {
				return fmt.Errorf("invalid email address %q", c.Email)
			}
			return errors.New("email is required")
		case "Password":
			return errors.New("password is required")
		}
	}

	return err
}
