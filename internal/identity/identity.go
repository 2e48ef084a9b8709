// Package identity implements the login policy: a fixed institutional
// email domain plus a shared password stand in for real authentication,
// and the user's display name and id are derived from the email itself.
package identity

import (
	"encoding/base64"
	"strings"

	"github.com/campuskit/leave-tracker/internal/model"
)

const _userIDLen = 8

type Policy struct {
	EmailDomain    string
	SharedPassword string
}

// Login checks the credentials and builds the session identity. It does
// not persist anything; the caller owns token generation and storage.
func (p Policy) Login(email, password string, role model.Role, department, rollNumber string) (model.Session, error) {
	if !strings.HasSuffix(email, "@"+p.EmailDomain) || strings.TrimSuffix(email, "@"+p.EmailDomain) == "" {
		return model.Session{}, model.NewError("login", model.ErrInvalidCredentials)
	}
	if password != p.SharedPassword {
		return model.Session{}, model.NewError("login", model.ErrInvalidCredentials)
	}

	return model.NewSession(DeriveUserID(email), email, role, DeriveDisplayName(email), department, rollNumber)
}

// DeriveDisplayName turns the email's local part into a name:
// separators become spaces and each word is capitalized, so
// "a.b@gmail.com" reads "A B".
func DeriveDisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	words := strings.Fields(local)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// DeriveUserID encodes the email into a short stable id. The exact
// encoding is not load-bearing; it only has to be deterministic and
// collision-resistant enough to tell users apart.
func DeriveUserID(email string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(email))
	enc = strings.NewReplacer("=", "", "+", "", "/", "").Replace(enc)
	if len(enc) > _userIDLen {
		enc = enc[:_userIDLen]
	}
	return enc
}
