package hinge

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
	http_transport "github.com/okonenko/hinge-auth/internal/transport/http"
	"github.com/okonenko/hinge-auth/internal/utils"
)

// Client defines the interface for the authentication endpoints of the API.
type Client interface {
	// RegisterInstall registers the install identifier with the identity service.
	// It must be called before an SMS code can be requested.
	RegisterInstall(ctx context.Context) error
	// RequestSMSCode asks the service to send a one-time code to the phone number.
	// Calling it again for the same number is the resend path.
	RequestSMSCode(ctx context.Context, phoneNumber string) error
	// VerifySMSCode submits the SMS one-time code. The expected outcome is an
	// email challenge (HTTP 412 with a case ID); a direct token is also handled.
	VerifySMSCode(ctx context.Context, phoneNumber, otp string) (*SMSVerificationResult, error)
	// VerifyEmailCode submits the email one-time code for the given challenge
	// case and returns the issued bearer token.
	VerifyEmailCode(ctx context.Context, caseID, code string) (string, error)
	// Identity returns the device identity presented to the API.
	Identity() *DeviceIdentity
	// GetBaseURL returns the base URL of the API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// identity is the device identity presented to the API.
	identity *DeviceIdentity
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// The device identity is built from the persisted device block; missing
// identifiers are generated and can be read back through Identity for
// persistence.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	identity, generated := DeviceIdentityFromConfig(&cfg.Device)
	if generated {
		logger.Debugf(context.Background(), "Generated device identifiers: session=%s device=%s install=%s",
			identity.SessionID, identity.DeviceID, identity.InstallID)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// Every request goes out with the device header set and, at debug level,
	// gets dumped by the logging transport.
	httpClient := &http.Client{
		Transport: http_transport.NewHeaderInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
			utils.NewStaticHeaderProvider(identity.Headers())),
		Timeout: timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		identity:   identity,
		httpClient: httpClient,
	}, nil
}

// RegisterInstall registers the install identifier with the identity service.
func (c *ClientImpl) RegisterInstall(ctx context.Context) error {
	payload := registerInstallRequest{InstallID: c.identity.InstallID}

	result, err := postJSON[struct{}](c, ctx, identityInstallURI, payload)
	if err != nil {
		return fmt.Errorf("failed to register install: %w", err)
	}

	if !isSuccessStatus(result.StatusCode) {
		return statusError(result.StatusCode, result.Body)
	}

	return nil
}

// RequestSMSCode asks the service to send a one-time code to the phone number.
func (c *ClientImpl) RequestSMSCode(ctx context.Context, phoneNumber string) error {
	payload := requestSMSCodeRequest{
		PhoneNumber: phoneNumber,
		DeviceID:    c.identity.DeviceID,
	}

	result, err := postJSON[struct{}](c, ctx, authSMSInitiateURI, payload)
	if err != nil {
		return fmt.Errorf("failed to request SMS code: %w", err)
	}

	if !isSuccessStatus(result.StatusCode) {
		return statusError(result.StatusCode, result.Body)
	}

	return nil
}

// VerifySMSCode submits the SMS one-time code.
//
// The service answers HTTP 412 with a case ID when it requires an email
// second factor; that is the expected success path of this step. A plain
// HTTP 200 with a token completes authentication without an email step.
func (c *ClientImpl) VerifySMSCode(ctx context.Context, phoneNumber, otp string) (*SMSVerificationResult, error) {
	payload := verifySMSCodeRequest{
		PhoneNumber: phoneNumber,
		DeviceID:    c.identity.DeviceID,
		InstallID:   c.identity.InstallID,
		OTP:         otp,
	}

	result, err := postJSON[smsVerificationResponse](c, ctx, authSMSVerifyURI, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to verify SMS code: %w", err)
	}

	switch {
	case result.StatusCode == http.StatusPreconditionFailed:
		if result.Data == nil || result.Data.CaseID == "" {
			return nil, ErrMissingCaseID
		}

		return &SMSVerificationResult{
			Email:  result.Data.Email,
			CaseID: result.Data.CaseID,
		}, nil

	case isSuccessStatus(result.StatusCode):
		if result.Data == nil || result.Data.Token == "" {
			return nil, ErrMissingToken
		}

		return &SMSVerificationResult{Token: result.Data.Token}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrSMSCodeRejected, statusError(result.StatusCode, result.Body))
	}
}

// VerifyEmailCode submits the email one-time code and returns the bearer token.
func (c *ClientImpl) VerifyEmailCode(ctx context.Context, caseID, code string) (string, error) {
	payload := verifyEmailCodeRequest{
		CaseID:    caseID,
		Code:      code,
		DeviceID:  c.identity.DeviceID,
		InstallID: c.identity.InstallID,
	}

	result, err := postJSON[emailVerificationResponse](c, ctx, authDeviceValidateURI, payload)
	if err != nil {
		return "", fmt.Errorf("failed to verify email code: %w", err)
	}

	if !isSuccessStatus(result.StatusCode) {
		return "", fmt.Errorf("%w: %s", ErrEmailCodeRejected, statusError(result.StatusCode, result.Body))
	}

	if result.Data == nil || result.Data.Token == "" {
		return "", ErrMissingToken
	}

	return result.Data.Token, nil
}

// Identity returns the device identity presented to the API.
func (c *ClientImpl) Identity() *DeviceIdentity {
	return c.identity
}

// GetBaseURL returns the base URL of the API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// isSuccessStatus reports whether the API treats the status as success.
func isSuccessStatus(statusCode int) bool {
	return statusCode == http.StatusOK ||
		statusCode == http.StatusCreated ||
		statusCode == http.StatusNoContent
}

// statusError builds an ErrUnexpectedHTTPStatus error carrying the status code
// and a body fragment.
func statusError(statusCode int, body string) error {
	if body == "" {
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}

	return fmt.Errorf("%w: %d: %s", ErrUnexpectedHTTPStatus, statusCode, body)
}

// truncateBody shortens a response body fragment for inclusion in error messages.
func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyLength {
		return string(body[:maxErrorBodyLength]) + "... [truncated]"
	}

	return string(body)
}

// postJSON posts a JSON payload to the specified URI and decodes the JSON
// response body when one is present. Status interpretation is left to the
// caller: some endpoints use non-2xx statuses as part of the protocol.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func postJSON[T any](c *ClientImpl, ctx context.Context, uri string, payload any) (*postJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	encodedPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(encodedPayload))
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodyLength))
	if err != nil {
		return nil, err
	}

	result := &postJSONResult[T]{
		StatusCode: response.StatusCode,
		Body:       truncateBody(body),
	}

	// Bodies that are empty or not JSON leave Data nil.
	var decoded T
	if json.Unmarshal(body, &decoded) == nil {
		result.Data = &decoded
	}

	return result, nil
}
