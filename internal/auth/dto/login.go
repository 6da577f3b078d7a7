package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode"`

	Fingerprint string `json:"-"`
	IPAddress   string `json:"-"`
	UserAgent   string `json:"-"`
}

type LoginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"-"` // delivered via HttpOnly cookie only
	TokenType    string     `json:"tokenType"`
	ExpiresIn    int        `json:"expiresIn"`
	User         UserOutput `json:"user"`
}
