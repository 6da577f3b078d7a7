package dto

// MFASetupOutput is returned exactly once: the plaintext backup codes cannot
// be recovered after this response.
type MFASetupOutput struct {
	Secret      string   `json:"secret"`
	OTPAuthURL  string   `json:"otpauthUrl"`
	QRCode      string   `json:"qrCode"` // PNG data URL for authenticator apps
	BackupCodes []string `json:"backupCodes"`
}

type MFAVerifyInput struct {
	Code string `json:"code"`
}
