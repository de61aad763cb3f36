package jwt

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// saveAudience keeps report tokens apart from admin session tokens.
const saveAudience = "analysis-save"

var ErrDigestMismatch = errors.New("report digest does not match token")

// ReportClaims bind a save token to one analysed report.
type ReportClaims struct {
	jwt.RegisteredClaims
	Digest string `json:"dig"`
}

// ReportSigner issues the short-lived tokens that let a client save the
// report it was given, and nothing else.
type ReportSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewReportSigner(secret, issuer string, ttl time.Duration) *ReportSigner {
	return &ReportSigner{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

func (s *ReportSigner) Sign(digest string) (string, error) {
	now := s.now().UTC()
	claims := ReportClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{saveAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Digest: digest,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *ReportSigner) Verify(token, digest string) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience(saveAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	var claims ReportClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(claims.Digest), []byte(digest)) != 1 {
		return ErrDigestMismatch
	}
	return nil
}
