// Package profile fetches the authenticated principal's profile from the
// remote API. The gateway uses it to populate the session state after a
// credential pair is established; a failure here is the signal that the held
// token is invalid.
package profile
