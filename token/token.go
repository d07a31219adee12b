package token

import (
	"errors"
	"os"
	"time"

	"curely/role"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is the fixed lifetime of an identity token. Expiry is the
// only invalidation path; there is no revocation list.
const Validity = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity asserted by a signed token: the account
// id, its role tag, and the administrative verification flag (for
// doctor and lab accounts, whether approval has been completed).
type Claims struct {
	jwt.RegisteredClaims
	ID           string    `json:"id"`
	Role         role.Role `json:"role"`
	Verification bool      `json:"verification"`
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

func Generate(id string, r role.Role, verified bool) (string, error) {
	return generate(id, r, verified, Validity)
}

func generate(id string, r role.Role, verified bool, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		ID:           id,
		Role:         r,
		Verification: verified,
	})
	return token.SignedString(secretKey())
}

/*
* Validate the signature and the expiry
* Return the decoded claims, never mutate anything
 */
func Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
