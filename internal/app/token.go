package app

import (
	"context"
	"errors"

	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
	token_service "github.com/okonenko/hinge-auth/internal/service/token"
	"github.com/okonenko/hinge-auth/internal/utils"
)

// ExecuteTokenInspectCommand executes the token inspect command.
// It decodes the claims of the given token, or of the stored one when
// rawToken is empty, and prints them.
func ExecuteTokenInspectCommand(ctx context.Context, cfg *config.Config, rawToken string) {
	if rawToken == "" {
		rawToken = cfg.AuthToken
	}

	if rawToken == "" {
		logger.Fatalf(ctx, "No token to inspect: %v", config.ErrEmptyAuthToken)
		return
	}

	inspection, err := token_service.NewInspector().Inspect(ctx, rawToken)
	if err != nil {
		// An opaque (non-JWT) token is still a usable token, just not a
		// decodable one.
		if errors.Is(err, token_service.ErrMalformedToken) {
			logger.Infof(ctx, "Token %s is not a JWT, nothing to decode", utils.MaskToken(rawToken))
			return
		}

		logger.Fatalf(ctx, "Failed to decode token: %v", err)
		return
	}

	for _, line := range inspection.Describe() {
		logger.Info(ctx, line)
	}

	if inspection.Expired() {
		logger.Warn(ctx, "The token has expired, run 'hinge-auth login' to get a new one")
	}
}
