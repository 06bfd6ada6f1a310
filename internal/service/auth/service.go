package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"

	"github.com/okonenko/hinge-auth/internal/client/hinge"
	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
	"github.com/okonenko/hinge-auth/internal/utils"
)

// maxSMSResends bounds how many times the SMS code can be re-requested in one login.
const maxSMSResends = 3

// ErrNoSMSCode indicates the SMS prompt loop ended without a code to verify.
var ErrNoSMSCode = errors.New("no SMS code was entered")

// Result is the outcome of a completed login.
type Result struct {
	// Token is the issued bearer token.
	Token string
	// Email is the masked email address the challenge code was sent to,
	// empty when the service required no email step.
	Email string
}

// Service runs the interactive authentication handshake.
type Service interface {
	// Login performs the full handshake and returns the issued bearer token.
	Login(ctx context.Context) (*Result, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the API client.
	client hinge.Client
	// prompter drives the console dialogue.
	prompter Prompter
}

// NewService creates a login service instance with dependency-injected components.
func NewService(cfg *config.Config, client hinge.Client, prompter Prompter) Service {
	return &ServiceImpl{
		cfg:      cfg,
		client:   client,
		prompter: prompter,
	}
}

// Login performs the full handshake:
// install registration, SMS code request, SMS code verification, the email
// challenge when the service demands one, and bearer token issuance.
func (s *ServiceImpl) Login(ctx context.Context) (*Result, error) {
	phoneNumber, err := s.resolvePhoneNumber(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Authenticating %s", utils.MaskPhoneNumber(phoneNumber))

	if err = s.client.RegisterInstall(ctx); err != nil {
		return nil, fmt.Errorf("install registration failed: %w", err)
	}

	logger.Debugf(ctx, "Install registered: %s", s.client.Identity().InstallID)

	if err = s.client.RequestSMSCode(ctx, phoneNumber); err != nil {
		return nil, fmt.Errorf("SMS code request failed: %w", err)
	}

	logger.Info(ctx, "SMS code sent")

	smsResult, err := s.verifySMSCode(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if !smsResult.NeedsEmailVerification() {
		logger.Info(ctx, "Authentication complete, no email challenge required")

		return &Result{Token: smsResult.Token}, nil
	}

	logger.Infof(ctx, "Email challenge: code sent to %s (case %s)", smsResult.Email, smsResult.CaseID)

	emailCode, err := s.prompter.ReadEmailCode(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.client.VerifyEmailCode(ctx, smsResult.CaseID, emailCode)
	if err != nil {
		return nil, fmt.Errorf("email verification failed: %w", err)
	}

	logger.Infof(ctx, "Bearer token obtained: %s", utils.MaskToken(token))

	return &Result{
		Token: token,
		Email: smsResult.Email,
	}, nil
}

// resolvePhoneNumber returns the configured phone number or prompts for one.
// A configured number still has to pass the same validation as typed input.
func (s *ServiceImpl) resolvePhoneNumber(ctx context.Context) (string, error) {
	if s.cfg.PhoneNumber != "" {
		if err := ValidatePhoneNumber(s.cfg.PhoneNumber); err != nil {
			return "", fmt.Errorf("configured phone number is invalid: %w", err)
		}

		return s.cfg.PhoneNumber, nil
	}

	return s.prompter.ReadPhoneNumber(ctx)
}

// verifySMSCode runs the SMS prompt loop, honoring resend requests up to
// maxSMSResends with the configured cooldown between them.
func (s *ServiceImpl) verifySMSCode(ctx context.Context, phoneNumber string) (*hinge.SMSVerificationResult, error) {
	resendsUsed := 0

	for {
		code, resend, err := s.prompter.ReadSMSCode(ctx)
		if err != nil {
			return nil, err
		}

		if !resend {
			if code == "" {
				return nil, ErrNoSMSCode
			}

			result, verifyErr := s.client.VerifySMSCode(ctx, phoneNumber, code)
			if verifyErr != nil {
				return nil, fmt.Errorf("SMS verification failed: %w", verifyErr)
			}

			return result, nil
		}

		if resendsUsed >= maxSMSResends {
			logger.Warnf(ctx, "Resend limit reached (%d), enter the code you already received", maxSMSResends)

			continue
		}

		if err = waitForResendCooldown(ctx, s.cfg.ParsedSMSResendCooldown); err != nil {
			return nil, err
		}

		if err = s.client.RequestSMSCode(ctx, phoneNumber); err != nil {
			return nil, fmt.Errorf("SMS code resend failed: %w", err)
		}

		resendsUsed++

		logger.Infof(ctx, "SMS code resent (%d of %d)", resendsUsed, maxSMSResends)
	}
}
