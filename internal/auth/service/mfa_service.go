package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeprnv/login-security/internal/auth/domain"
	"github.com/codeprnv/login-security/internal/auth/dto"
	autherror "github.com/codeprnv/login-security/internal/errors"
	"github.com/codeprnv/login-security/pkg/constant"
)

const backupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type MFAService struct {
	repo            domain.UserRepository
	issuer          string
	backupCodeCount int
}

func NewMFAService(repo domain.UserRepository, issuer string, backupCodeCount int) *MFAService {
	return &MFAService{
		repo:            repo,
		issuer:          issuer,
		backupCodeCount: backupCodeCount,
	}
}

// Setup generates a TOTP secret, its enrollment QR payload, and a fresh set
// of single-use backup codes. Only bcrypt hashes of the codes are persisted;
// the plaintext codes in the response cannot be recovered afterwards.
// The user stays pending until Confirm sees a valid code.
func (s *MFAService) Setup(ctx context.Context, userID string) (*dto.MFASetupOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	plaintext := make([]string, 0, s.backupCodeCount)
	hashed := make([]domain.BackupCode, 0, s.backupCodeCount)
	now := time.Now()

	for i := 0; i < s.backupCodeCount; i++ {
		code, err := randomBackupCode(constant.BackupCodeLength)
		if err != nil {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		plaintext = append(plaintext, code)
		hashed = append(hashed, domain.BackupCode{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			CodeHash:  string(hash),
			Used:      false,
			CreatedAt: now,
		})
	}

	if err := s.repo.UpdateMFAEnrollment(ctx, user.ID, key.Secret(), hashed); err != nil {
		return nil, err
	}

	qr, err := qrDataURL(key)
	if err != nil {
		return nil, err
	}

	return &dto.MFASetupOutput{
		Secret:      key.Secret(),
		OTPAuthURL:  key.URL(),
		QRCode:      qr,
		BackupCodes: plaintext,
	}, nil
}

// Confirm flips the user to enabled-totp once a valid code proves the
// authenticator app holds the pending secret. The tolerance window covers
// client clock skew.
func (s *MFAService) Confirm(ctx context.Context, userID, code string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if user.MFASecret == "" {
		return autherror.ErrMFANotEnrolled
	}

	if !validateTOTP(code, user.MFASecret) {
		return autherror.ErrInvalidMFACode
	}

	return s.repo.EnableMFA(ctx, user.ID, domain.MFAMethodTOTP)
}

// VerifyLogin checks the login-time MFA factor. It returns whether MFA was
// actually verified (false for users without MFA). A missing code on an
// enabled account yields MFARequiredError so the caller can prompt without
// creating a session. TOTP is tried first; a miss falls through to the
// unused backup codes, consuming the first match.
func (s *MFAService) VerifyLogin(ctx context.Context, user *domain.User, code string) (bool, error) {
	if !user.MFAEnabled {
		return false, nil
	}

	if code == "" {
		return false, &autherror.MFARequiredError{Method: user.MFAMethod}
	}

	if validateTOTP(code, user.MFASecret) {
		return true, nil
	}

	codes, err := s.repo.GetBackupCodes(ctx, user.ID)
	if err != nil {
		return false, err
	}

	for _, bc := range codes {
		if bc.Used {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(bc.CodeHash), []byte(code)) == nil {
			if err := s.repo.MarkBackupCodeUsed(ctx, bc.ID, time.Now()); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, autherror.ErrInvalidMFACode
}

func validateTOTP(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      constant.TOTPSkewSteps,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func randomBackupCode(length int) (string, error) {
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	for i := range raw {
		raw[i] = backupCodeAlphabet[int(raw[i])%len(backupCodeAlphabet)]
	}
	return string(raw), nil
}

func qrDataURL(key *otp.Key) (string, error) {
	img, err := key.Image(200, 200)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
