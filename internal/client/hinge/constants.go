package hinge

const (
	// identityInstallURI is the URI path for install registration.
	identityInstallURI = "identity/install"
	// authSMSInitiateURI is the URI path for requesting an SMS one-time code.
	authSMSInitiateURI = "auth/sms/v2/initiate"
	// authSMSVerifyURI is the URI path for verifying an SMS one-time code.
	authSMSVerifyURI = "auth/sms/v2"
	// authDeviceValidateURI is the URI path for verifying an email one-time code.
	authDeviceValidateURI = "auth/device/validate"
)

// Default simulated device profile, captured from the iOS client the
// endpoints were reverse-engineered from. Individual fields can be
// overridden through the device block of the configuration file.
const (
	// DefaultPlatform is the x-device-platform value.
	DefaultPlatform = "iOS"
	// DefaultAppVersion is the x-app-version value.
	DefaultAppVersion = "9.78.0"
	// DefaultBuildNumber is the x-build-number value.
	DefaultBuildNumber = "11614"
	// DefaultModel is the x-device-model value.
	DefaultModel = "iPhone 13"
	// DefaultModelCode is the x-device-model-code value.
	DefaultModelCode = "iPhone13,2"
	// DefaultOSVersion is the x-os-version value.
	DefaultOSVersion = "18.3.1"
	// DefaultRegion is the x-device-region value.
	DefaultRegion = "GB"
	// DefaultLocale is the accept-language value.
	DefaultLocale = "en-GB"
	// DefaultUserAgent is the CFNetwork user agent of the simulated client build.
	DefaultUserAgent = "Hinge/11612 CFNetwork/3826.400.120 Darwin/24.3.0"
)

const (
	// maxResponseBodyLength caps how much of a response body is read.
	maxResponseBodyLength = 1 << 20
	// maxErrorBodyLength caps the response body fragment embedded in status errors.
	maxErrorBodyLength = 512
)
