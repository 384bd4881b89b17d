package models

import (
	"errors"
	"strings"
)

type RegisterProfileRequest struct {
	Kind     string `json:"kind"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Document string `json:"document,omitempty"`
}

func (r RegisterProfileRequest) Validate() error {
	var errs []string

	kind := strings.ToLower(strings.TrimSpace(r.Kind))
	if kind != "borrower" && kind != "investor" {
		errs = append(errs, "kind must be borrower or investor")
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(email, "@") {
		errs = append(errs, "email is not valid")
	}

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}

	if len(r.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ProfileResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Document        string `json:"document,omitempty"`
	KYCApproved     bool   `json:"kycApproved"`
	CalculatedScore int    `json:"calculatedScore"`
	CreatedAt       string `json:"createdAt"`
}
