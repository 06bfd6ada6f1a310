package utils

import (
	"mime"
	"regexp"
	"strings"
)

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*" and "application/json".
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/problem\+json$`),
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*" and "application/json".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// maskedPhoneVisibleSuffix is the number of trailing digits left visible when masking a phone number.
const maskedPhoneVisibleSuffix = 3

// maskedTokenVisibleRunes is the number of leading and trailing characters left visible when masking a token.
const maskedTokenVisibleRunes = 6

// MaskPhoneNumber masks a phone number for logging, keeping the leading "+"
// (if present) and the last few digits visible.
func MaskPhoneNumber(phoneNumber string) string {
	if phoneNumber == "" {
		return ""
	}

	prefix := ""
	digits := phoneNumber

	if strings.HasPrefix(phoneNumber, "+") {
		prefix = "+"
		digits = phoneNumber[1:]
	}

	if len(digits) <= maskedPhoneVisibleSuffix {
		return prefix + strings.Repeat("*", len(digits))
	}

	hidden := len(digits) - maskedPhoneVisibleSuffix

	return prefix + strings.Repeat("*", hidden) + digits[hidden:]
}

// MaskToken masks an opaque credential for logging, keeping only short
// leading and trailing fragments visible.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) <= maskedTokenVisibleRunes*2 {
		return strings.Repeat("*", len(token))
	}

	return token[:maskedTokenVisibleRunes] + "..." + token[len(token)-maskedTokenVisibleRunes:]
}
