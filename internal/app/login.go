package app

import (
	"context"
	"os"

	hinge_client "github.com/okonenko/hinge-auth/internal/client/hinge"
	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
	auth_service "github.com/okonenko/hinge-auth/internal/service/auth"
)

// ExecuteLoginCommand executes the login command.
// It runs the interactive handshake (phone number, SMS code, email code),
// then saves the bearer token and the device identity to the configuration
// file so later runs replay the same device.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, freshDevice bool) {
	if freshDevice {
		logger.Info(ctx, "Discarding the persisted device identity")

		cfg.Device.SessionID = ""
		cfg.Device.DeviceID = ""
		cfg.Device.InstallID = ""
	}

	hingeClient, err := hinge_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
		return
	}

	prompter := auth_service.NewConsolePrompter(cfg, os.Stdin, os.Stdout)

	result, err := auth_service.NewService(cfg, hingeClient, prompter).Login(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	// Persist the token and the identity the token was issued to.
	cfg.AuthToken = result.Token

	identity := hingeClient.Identity()
	cfg.Device.SessionID = identity.SessionID
	cfg.Device.DeviceID = identity.DeviceID
	cfg.Device.InstallID = identity.InstallID

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Authentication complete! The bearer token is stored in the config file.")
	logger.Info(ctx, "")
	logger.Info(ctx, "Inspect the token's claims with:")
	logger.Info(ctx, "hinge-auth token inspect")
}
