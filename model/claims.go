package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the payload carried by every token this service issues.
// RegisteredClaims.ID holds the jti, which doubles as the revocation
// blocklist key. Refresh distinguishes the two token kinds: a refresh
// token must never be accepted where an access token is required, and
// vice versa.
type AppClaims struct {
	UserID  int    `json:"user_id"`
	Role    Role   `json:"role"`
	Refresh bool   `json:"refresh"`
	jwt.RegisteredClaims
}
