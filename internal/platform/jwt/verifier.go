package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned when a token's signature is invalid or the
	// token has expired.
	ErrTokenInvalid = errors.New("token expired or invalid")

	// ErrMissingClaims is returned when a token's signature verifies but the
	// identity claims (sub, id) are absent or empty.
	ErrMissingClaims = errors.New("incorrect credentials")
)

// Claims holds the identity extracted from a verified access token.
type Claims struct {
	Email  string
	UserID uint
}

// Verifier validates access tokens and extracts their identity claims.
type Verifier struct {
	secret    []byte
	algorithm string
}

// NewVerifier creates a Verifier that checks tokens against the shared secret.
// Only tokens signed with the configured HMAC algorithm are accepted.
func NewVerifier(secret, algorithm string) *Verifier {
	return &Verifier{secret: []byte(secret), algorithm: algorithm}
}

// Verify parses and validates a token string.
// 署名不正・期限切れ・設定と異なるアルゴリズムはErrTokenInvalid、
// 署名は有効だがsub/idクレームが欠けている場合はErrMissingClaimsを返します。
func (v *Verifier) Verify(tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only the configured HMAC method allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != v.algorithm {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMissingClaims
	}

	email, _ := mapClaims["sub"].(string)
	id, idOK := mapClaims["id"].(float64) // JWT numbers are decoded as float64
	if email == "" || !idOK || id == 0 {
		return Claims{}, ErrMissingClaims
	}

	return Claims{Email: email, UserID: uint(id)}, nil
}
