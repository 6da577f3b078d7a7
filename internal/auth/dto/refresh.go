package dto

type RefreshInput struct {
	RefreshToken string `json:"-"` // read from the HttpOnly cookie
	Fingerprint  string `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}
