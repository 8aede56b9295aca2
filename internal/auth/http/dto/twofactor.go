// Package dto defines request and response types for the auth endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// TwoFactorVerifyRequest carries a submitted TOTP code.
type TwoFactorVerifyRequest struct {
	Code string `json:"code"`
}

// Validate checks the verify request.
func (r TwoFactorVerifyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.Length(6, 6).Error("code must be 6 digits"),
		),
	)
}

// TwoFactorSetupResponse returns the enrolment secret exactly once.
type TwoFactorSetupResponse struct {
	Secret       string `json:"secret"`
	ProvisionURI string `json:"provision_uri"`
}

// MapTwoFactorSetupToResponse converts an enrolment result to its response.
func MapTwoFactorSetupToResponse(setup *authDomain.TwoFactorSetup) TwoFactorSetupResponse {
	return TwoFactorSetupResponse{
		Secret:       setup.Secret,
		ProvisionURI: setup.ProvisionURI,
	}
}
