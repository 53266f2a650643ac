package jwtmw

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the cookie that carries the access token.
const CookieName = "token"

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	method     jwt.SigningMethod
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret, signing
// algorithm name and expiration duration. Only HMAC algorithms (HS256/HS384/HS512)
// are accepted; anything else is a configuration error.
func NewGenerator(secret, algorithm string, expiration time.Duration) (Generator, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC", algorithm)
	}
	return &generator{
		secret:     []byte(secret),
		method:     method,
		expiration: expiration,
	}, nil
}

// GenerateToken creates a signed JWT token carrying the user's identity.
// クレームは sub=メールアドレス、id=ユーザーID、exp=発行時刻+有効期間です。
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(g.method, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// SetAuthCookie attaches the token to the response as an HttpOnly, Secure
// cookie whose lifetime matches the token expiration.
// ボディでのトークン返却と併用する補助的な配送経路です。
func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", true, true)
}
