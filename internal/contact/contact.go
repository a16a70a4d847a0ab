// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contact defines the contact form submission and its validation
// rules. Submissions are request-scoped and never persisted.
package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Submission is one contact form request body.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	// Website is the honeypot field. It is hidden from humans; any
	// non-empty value marks the submission as automated.
	Website string `json:"website,omitempty"`

	// RecaptchaToken is the optional reCAPTCHA v3 token from the client.
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// fieldOrder fixes which violation is reported when several fields fail.
var fieldOrder = []string{"name", "email", "message"}

// Validate checks the structural rules: name 1–200 characters, a valid
// email address, message 10–5000 characters. Honeypot and token are
// optional free-form strings.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, 200).Error("name must be at most 200 characters"),
		),
		validation.Field(&s.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		),
		validation.Field(&s.Message,
			validation.Required.Error("message is required"),
			validation.RuneLength(10, 5000).Error("message must be between 10 and 5000 characters"),
		),
	)
}

// IsSpam reports whether the honeypot field was filled in.
func (s Submission) IsSpam() bool {
	return s.Website != ""
}

// FirstError extracts the first violated field's message from a Validate
// error, in declared field order, for the client-facing response.
func FirstError(err error) string {
	if err == nil {
		return ""
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return err.Error()
	}
	for _, field := range fieldOrder {
		if fieldErr, found := errs[field]; found && fieldErr != nil {
			return fieldErr.Error()
		}
	}
	return err.Error()
}
