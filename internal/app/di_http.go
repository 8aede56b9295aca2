package app

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/hearthside/hearth/internal/auth/http"
	familyHTTP "github.com/hearthside/hearth/internal/family/http"
	"github.com/hearthside/hearth/internal/http"
	recordsHTTP "github.com/hearthside/hearth/internal/records/http"
	userHTTP "github.com/hearthside/hearth/internal/user/http"
)

// buildRouterConfig assembles the handlers and middleware settings for the HTTP server.
func (c *Container) buildRouterConfig() (*http.RouterConfig, error) {
	logger := c.Logger()

	familyUseCase, err := c.FamilyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get family use case for http server: %w", err)
	}

	memberUseCase, err := c.MemberUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get member use case for http server: %w", err)
	}

	appointmentUseCase, err := c.AppointmentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment use case for http server: %w", err)
	}

	medicationUseCase, err := c.MedicationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get medication use case for http server: %w", err)
	}

	allergyUseCase, err := c.AllergyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get allergy use case for http server: %w", err)
	}

	conditionUseCase, err := c.ConditionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get condition use case for http server: %w", err)
	}

	vaccinationUseCase, err := c.VaccinationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get vaccination use case for http server: %w", err)
	}

	notificationUseCase, err := c.NotificationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification use case for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	twoFactorUseCase, err := c.TwoFactorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get two-factor use case for http server: %w", err)
	}

	var meterProvider metric.MeterProvider
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		meterProvider = provider.MeterProvider()
	}

	return &http.RouterConfig{
		SessionStore: c.SessionStore(),

		FamilyHandler:       familyHTTP.NewFamilyHandler(familyUseCase, logger),
		MemberHandler:       familyHTTP.NewMemberHandler(memberUseCase, logger),
		AppointmentHandler:  recordsHTTP.NewAppointmentHandler(appointmentUseCase, logger),
		MedicationHandler:   recordsHTTP.NewMedicationHandler(medicationUseCase, logger),
		AllergyHandler:      recordsHTTP.NewAllergyHandler(allergyUseCase, logger),
		ConditionHandler:    recordsHTTP.NewConditionHandler(conditionUseCase, logger),
		VaccinationHandler:  recordsHTTP.NewVaccinationHandler(vaccinationUseCase, logger),
		NotificationHandler: recordsHTTP.NewNotificationHandler(notificationUseCase, logger),
		UserHandler:         userHTTP.NewUserHandler(userUseCase, logger),
		TwoFactorHandler:    authHTTP.NewTwoFactorHandler(twoFactorUseCase, logger),

		MeterProvider:    meterProvider,
		MetricsNamespace: c.config.MetricsNamespace,

		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,

		RateLimitEnabled:        c.config.RateLimitEnabled,
		RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
		RateLimitBurst:          c.config.RateLimitBurst,

		RateLimitTwoFactorEnabled:        c.config.RateLimitTwoFactorEnabled,
		RateLimitTwoFactorRequestsPerSec: c.config.RateLimitTwoFactorRequestsPerSec,
		RateLimitTwoFactorBurst:          c.config.RateLimitTwoFactorBurst,
	}, nil
}
