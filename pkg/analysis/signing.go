package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ReportSigner issues and checks the save token Analyze attaches to a
// report, binding it to the digest of the report body.
type ReportSigner interface {
	Sign(digest string) (string, error)
	Verify(token, digest string) error
}

// Digest is the hex SHA-256 of the report's JSON form with SaveToken cleared.
func (r Report) Digest() (string, error) {
	r.SaveToken = ""
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
