package hinge

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/okonenko/hinge-auth/internal/config"
)

// DeviceProfile describes the simulated hardware and app build.
type DeviceProfile struct {
	// Platform is the device platform (x-device-platform).
	Platform string
	// AppVersion is the app version (x-app-version).
	AppVersion string
	// BuildNumber is the app build number (x-build-number).
	BuildNumber string
	// Model is the marketing device model (x-device-model).
	Model string
	// ModelCode is the internal device model code (x-device-model-code).
	ModelCode string
	// OSVersion is the OS version (x-os-version).
	OSVersion string
	// Region is the device region (x-device-region).
	Region string
	// Locale is the accept-language value.
	Locale string
	// UserAgent is the CFNetwork user agent string.
	UserAgent string
}

// DeviceIdentity is the set of identifiers and the profile presented to the API.
type DeviceIdentity struct {
	// SessionID is the per-identity session identifier (x-session-id).
	SessionID string
	// DeviceID is the device identifier (x-device-id).
	DeviceID string
	// InstallID is the install identifier (x-install-id).
	InstallID string
	// Profile is the simulated device profile.
	Profile DeviceProfile
}

// DefaultDeviceProfile returns the profile of the client build the endpoints
// were captured from.
func DefaultDeviceProfile() DeviceProfile {
	return DeviceProfile{
		Platform:    DefaultPlatform,
		AppVersion:  DefaultAppVersion,
		BuildNumber: DefaultBuildNumber,
		Model:       DefaultModel,
		ModelCode:   DefaultModelCode,
		OSVersion:   DefaultOSVersion,
		Region:      DefaultRegion,
		Locale:      DefaultLocale,
		UserAgent:   DefaultUserAgent,
	}
}

// NewDeviceIdentity generates a fresh identity with the given profile.
// The API expects identifiers as uppercase v4 UUIDs.
func NewDeviceIdentity(profile DeviceProfile) *DeviceIdentity {
	return &DeviceIdentity{
		SessionID: newUppercaseUUID(),
		DeviceID:  newUppercaseUUID(),
		InstallID: newUppercaseUUID(),
		Profile:   profile,
	}
}

// DeviceIdentityFromConfig builds an identity from the persisted device block,
// generating any identifier that is missing and falling back to the default
// profile for unset fields. The second return value reports whether at least
// one identifier had to be generated.
func DeviceIdentityFromConfig(device *config.DeviceConfig) (*DeviceIdentity, bool) {
	profile := DefaultDeviceProfile()

	if device.AppVersion != "" {
		profile.AppVersion = device.AppVersion
	}

	if device.BuildNumber != "" {
		profile.BuildNumber = device.BuildNumber
	}

	if device.Model != "" {
		profile.Model = device.Model
	}

	if device.ModelCode != "" {
		profile.ModelCode = device.ModelCode
	}

	if device.OSVersion != "" {
		profile.OSVersion = device.OSVersion
	}

	if device.Region != "" {
		profile.Region = device.Region
	}

	if device.Locale != "" {
		profile.Locale = device.Locale
	}

	identity := &DeviceIdentity{
		SessionID: strings.ToUpper(device.SessionID),
		DeviceID:  strings.ToUpper(device.DeviceID),
		InstallID: strings.ToUpper(device.InstallID),
		Profile:   profile,
	}

	generated := false

	if identity.SessionID == "" {
		identity.SessionID = newUppercaseUUID()
		generated = true
	}

	if identity.DeviceID == "" {
		identity.DeviceID = newUppercaseUUID()
		generated = true
	}

	if identity.InstallID == "" {
		identity.InstallID = newUppercaseUUID()
		generated = true
	}

	return identity, generated
}

// Headers returns the header set the API expects on every request.
func (d *DeviceIdentity) Headers() http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "*/*")
	headers.Set("Accept-Language", d.Profile.Locale)
	headers.Set("User-Agent", d.Profile.UserAgent)
	headers.Set("X-Device-Platform", d.Profile.Platform)
	headers.Set("X-App-Version", d.Profile.AppVersion)
	headers.Set("X-Build-Number", d.Profile.BuildNumber)
	headers.Set("X-Device-Model", d.Profile.Model)
	headers.Set("X-Device-Model-Code", d.Profile.ModelCode)
	headers.Set("X-Os-Version", d.Profile.OSVersion)
	headers.Set("X-Device-Region", d.Profile.Region)
	headers.Set("X-Session-Id", d.SessionID)
	headers.Set("X-Device-Id", d.DeviceID)
	headers.Set("X-Install-Id", d.InstallID)

	return headers
}

// newUppercaseUUID generates a v4 UUID in the uppercase format the API expects.
func newUppercaseUUID() string {
	return strings.ToUpper(uuid.NewString())
}
