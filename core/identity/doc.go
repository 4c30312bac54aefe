// Package identity defines the user profile model shared across the SDK.
package identity
