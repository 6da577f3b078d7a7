package constant

const (
	DefaultUserRole  = "user"
	AdminRole        = "admin"
	DefaultTokenType = "Bearer"

	RefreshTokenCookie = "refresh_token"

	BackupCodeLength = 8

	// TOTP verification accepts codes within this many steps of the
	// server's current step, covering client clock skew.
	TOTPSkewSteps = 2
)
