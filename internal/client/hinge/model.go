package hinge

// registerInstallRequest is the payload for install registration.
type registerInstallRequest struct {
	// InstallID is the uppercase UUID identifying this install.
	InstallID string `json:"installId"`
}

// requestSMSCodeRequest is the payload for initiating SMS verification.
type requestSMSCodeRequest struct {
	// PhoneNumber is the phone number to send the code to, in E.164 format.
	PhoneNumber string `json:"phoneNumber"`
	// DeviceID is the uppercase UUID identifying this device.
	DeviceID string `json:"deviceId"`
}

// verifySMSCodeRequest is the payload for verifying the SMS one-time code.
type verifySMSCodeRequest struct {
	// PhoneNumber is the phone number the code was sent to.
	PhoneNumber string `json:"phoneNumber"`
	// DeviceID is the uppercase UUID identifying this device.
	DeviceID string `json:"deviceId"`
	// InstallID is the uppercase UUID identifying this install.
	InstallID string `json:"installId"`
	// OTP is the one-time code received via SMS.
	OTP string `json:"otp"`
}

// verifyEmailCodeRequest is the payload for verifying the email one-time code.
type verifyEmailCodeRequest struct {
	// CaseID is the challenge case identifier returned by SMS verification.
	CaseID string `json:"caseId"`
	// Code is the one-time code received via email.
	Code string `json:"code"`
	// DeviceID is the uppercase UUID identifying this device.
	DeviceID string `json:"deviceId"`
	// InstallID is the uppercase UUID identifying this install.
	InstallID string `json:"installId"`
}

// smsVerificationResponse is the response body of SMS code verification.
// On HTTP 412 it carries the email challenge; on HTTP 200 it may carry a token directly.
type smsVerificationResponse struct {
	// Email is the masked email address the follow-up code is sent to.
	Email string `json:"email"`
	// CaseID is the challenge case identifier to present with the email code.
	CaseID string `json:"caseId"`
	// Token is the bearer token, present when no email challenge is required.
	Token string `json:"token"`
}

// emailVerificationResponse is the response body of email code verification.
type emailVerificationResponse struct {
	// Token is the issued bearer token.
	Token string `json:"token"`
}

// SMSVerificationResult is the outcome of verifying the SMS one-time code.
// Exactly one of Token or CaseID is populated.
type SMSVerificationResult struct {
	// Token is the bearer token, set when the service required no email challenge.
	Token string
	// Email is the masked email address the follow-up code was sent to.
	Email string
	// CaseID is the challenge case identifier to present with the email code.
	CaseID string
}

// NeedsEmailVerification reports whether the service demanded an email second factor.
func (r *SMSVerificationResult) NeedsEmailVerification() bool {
	return r.CaseID != ""
}

// postJSONResult wraps a decoded response body with its HTTP status code.
type postJSONResult[T any] struct {
	// Data is the decoded response body, nil when the body was empty or not JSON.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body, truncated to maxErrorBodyLength.
	Body string
}
