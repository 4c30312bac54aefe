package gateway

// Request and response payloads for the auth endpoints. Field names mirror
// the wire format: requests use camelCase, the auth response uses snake_case.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// authResponse is the shared response shape of login, register, and refresh.
// ExpiresIn is decoded but deliberately unused: the client never tracks
// expiry locally and treats a 401 as the expiry signal.
type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       int64  `json:"user_id"`
	Email        string `json:"email"`
}

// RegisterParams are the fields of the registration form, forwarded verbatim.
type RegisterParams struct {
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}
