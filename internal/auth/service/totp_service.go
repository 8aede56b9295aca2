package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"strings"
	"time"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

const (
	totpStep       = 30 * time.Second
	totpDigits     = 6
	totpSecretSize = 20 // 160-bit seed per RFC 4226
)

// totpService implements TOTPService with HMAC-SHA1 per RFC 6238.
type totpService struct{}

// NewTOTPService creates the default TOTP implementation: 6 digits, 30-second
// steps, one step of accepted clock skew.
func NewTOTPService() TOTPService {
	return &totpService{}
}

func (s *totpService) GenerateSecret() (string, error) {
	seed := make([]byte, totpSecretSize)
	if _, err := rand.Read(seed); err != nil {
		return "", apperrors.Wrap(err, "failed to generate totp seed")
	}
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(seed)
	cryptoDomain.Zero(seed)
	return secret, nil
}

func (s *totpService) Verify(code, secret string, when time.Time) bool {
	code = strings.TrimSpace(code)
	if len(code) != totpDigits {
		return false
	}

	seed, err := decodeTOTPSecret(secret)
	if err != nil {
		return false
	}
	defer cryptoDomain.Zero(seed)

	step := int64(totpStep / time.Second)
	counter := when.Unix() / step
	for skew := int64(-1); skew <= 1; skew++ {
		current := counter + skew
		if current < 0 {
			continue
		}
		if hmac.Equal([]byte(computeTOTPCode(seed, uint64(current))), []byte(code)) {
			return true
		}
	}
	return false
}

func (s *totpService) ProvisionURI(account, issuer, secret string) string {
	period := int(totpStep / time.Second)
	return fmt.Sprintf(
		"otpauth://totp/%s:%s?secret=%s&issuer=%s&algorithm=SHA1&digits=%d&period=%d",
		url.QueryEscape(issuer), url.QueryEscape(account), secret,
		url.QueryEscape(issuer), totpDigits, period,
	)
}

// computeTOTPCode derives the truncated HOTP value for one counter step.
func computeTOTPCode(seed []byte, counter uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)

	mac := hmac.New(sha1.New, seed)
	mac.Write(buf[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0F
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF
	return fmt.Sprintf("%0*d", totpDigits, truncated%1_000_000)
}

func decodeTOTPSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	return base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
}
