package auth

//go:generate $MOCKGEN -source=prompt.go -destination=mocks/prompt_mock.go

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
)

// resendCommand is the input that requests an SMS code resend instead of a code.
const resendCommand = "r"

// Static error definitions for better error handling.
var (
	// ErrTooManyInvalidInputs indicates the user exhausted the input attempts.
	ErrTooManyInvalidInputs = errors.New("too many invalid inputs")
	// ErrInputClosed indicates the input stream ended before a value was read.
	ErrInputClosed = errors.New("input stream closed")
	// ErrInvalidPhoneNumber indicates a phone number that is not in E.164 format.
	ErrInvalidPhoneNumber = errors.New("phone number must be in E.164 format (e.g. +447911123456)")
	// ErrInvalidOTP indicates a one-time code that is not a short numeric string.
	ErrInvalidOTP = errors.New("one-time code must be 4 to 8 digits")
)

// Prompter abstracts the console dialogue of the login flow.
type Prompter interface {
	// ReadPhoneNumber prompts for and returns a phone number in E.164 format.
	ReadPhoneNumber(ctx context.Context) (string, error)
	// ReadSMSCode prompts for the SMS one-time code.
	// The second return value reports that the user asked for a resend instead.
	ReadSMSCode(ctx context.Context) (code string, resend bool, err error)
	// ReadEmailCode prompts for the email one-time code.
	ReadEmailCode(ctx context.Context) (string, error)
}

// phoneNumberInput carries a phone number through struct-tag validation.
type phoneNumberInput struct {
	PhoneNumber string `validate:"required,e164"`
}

// otpInput carries a one-time code through struct-tag validation.
type otpInput struct {
	Code string `validate:"required,numeric,min=4,max=8"`
}

// ConsolePrompter reads the login dialogue from an input stream (stdin in
// production) and writes prompts to an output stream.
type ConsolePrompter struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// reader reads user input line by line.
	reader *bufio.Reader
	// writer receives the prompt text.
	writer io.Writer
	// validate performs struct-tag validation of user input.
	validate *validator.Validate
}

// NewConsolePrompter creates a prompter reading from input and writing prompts to output.
func NewConsolePrompter(cfg *config.Config, input io.Reader, output io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		cfg:      cfg,
		reader:   bufio.NewReader(input),
		writer:   output,
		validate: validator.New(),
	}
}

// ReadPhoneNumber prompts for and returns a phone number in E.164 format.
func (p *ConsolePrompter) ReadPhoneNumber(ctx context.Context) (string, error) {
	return p.readValidated(ctx, "Enter your phone number (E.164, e.g. +447911123456): ", ValidatePhoneNumber)
}

// ReadSMSCode prompts for the SMS one-time code.
// Entering "r" requests a resend instead of submitting a code.
func (p *ConsolePrompter) ReadSMSCode(ctx context.Context) (string, bool, error) {
	var resendRequested bool

	code, err := p.readValidated(
		ctx,
		fmt.Sprintf("Enter the SMS code (or '%s' to resend): ", resendCommand),
		func(input string) error {
			if strings.EqualFold(input, resendCommand) {
				resendRequested = true

				return nil
			}

			return p.validateOTP(input)
		})
	if err != nil {
		return "", false, err
	}

	if resendRequested {
		return "", true, nil
	}

	return code, false, nil
}

// ReadEmailCode prompts for the email one-time code.
func (p *ConsolePrompter) ReadEmailCode(ctx context.Context) (string, error) {
	return p.readValidated(ctx, "Enter the email code: ", p.validateOTP)
}

// readValidated prompts until the input passes validation or the attempt
// budget is exhausted.
func (p *ConsolePrompter) readValidated(
	ctx context.Context,
	prompt string,
	validateInput func(string) error,
) (string, error) {
	attempts := p.cfg.MaxInputAttempts
	if attempts <= 0 {
		attempts = config.DefaultMaxInputAttempts
	}

	for range attempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(p.writer, prompt)

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		input := strings.TrimSpace(line)

		if validationErr := validateInput(input); validationErr != nil {
			logger.Warnf(ctx, "Invalid input: %v", validationErr)

			continue
		}

		return input, nil
	}

	return "", ErrTooManyInvalidInputs
}

// validateOTP checks that the input looks like a one-time code.
func (p *ConsolePrompter) validateOTP(input string) error {
	if err := p.validate.Struct(otpInput{Code: input}); err != nil {
		return ErrInvalidOTP
	}

	return nil
}

// phoneValidator validates phone numbers outside any prompter instance.
//
//nolint:gochecknoglobals // Validator instances are immutable after creation and safe for concurrent use.
var phoneValidator = validator.New()

// ValidatePhoneNumber checks that the input is an E.164 phone number.
// It is also applied to the phone_number preset from the configuration.
func ValidatePhoneNumber(input string) error {
	if err := phoneValidator.Struct(phoneNumberInput{PhoneNumber: input}); err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalidPhoneNumber, input)
	}

	return nil
}
