// Package utils provides small shared helpers: HTTP content-type detection,
// header providers for outgoing requests, and masking of sensitive values in logs.
package utils
