package search

// TokenSource supplies the bearer credential attached to outgoing requests.
// Storage and refresh of the credential are the caller's concern; the client
// only reads it. Returning ok == false sends the request unauthenticated.
type TokenSource interface {
	Token() (token string, ok bool)
}

// StaticToken is a TokenSource for a credential known up front.
type StaticToken string

func (t StaticToken) Token() (string, bool) {
	return string(t), t != ""
}

// TokenResponse is the payload of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AssignedPlay is one play assignment on a user profile.
type AssignedPlay struct {
	PlayID      string  `json:"play_id"`
	PlayTitle   string  `json:"play_title"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// Profile describes the authenticated user.
type Profile struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	DisplayName   string         `json:"display_name"`
	CompanyID     string         `json:"company_id"`
	CompanyName   string         `json:"company_name"`
	AssignedPlays []AssignedPlay `json:"assigned_plays"`
}
