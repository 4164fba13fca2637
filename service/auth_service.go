package service

import (
	"book-review-api/logger"
	"book-review-api/model"
	"book-review-api/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Login must never reveal which of the two failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned on signup with a taken email.
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrInvalidToken is returned when a token fails structural,
	// signature or expiry checks. Parse never returns partial claims.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService owns password hashing, token issuance/verification and
// the login/logout/refresh flows. The signing secret and TTLs are
// injected at construction so the service stays testable.
type AuthService struct {
	userRepo   repository.IUserRepository
	blocklist  ITokenBlocklist
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repository.IUserRepository, blocklist ITokenBlocklist, secretKey string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		blocklist:  blocklist,
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// IssueToken builds and signs a token for the given user. Every token
// gets a fresh jti; the jti is the key used for revocation later.
func (s *AuthService) IssueToken(userID int, role model.Role, ttl time.Duration, isRefresh bool) (string, error) {
	now := time.Now()

	claims := &model.AppClaims{
		UserID:  userID,
		Role:    role,
		Refresh: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// GenerateTokenPair issues the access/refresh pair handed out at login.
func (s *AuthService) GenerateTokenPair(user *model.User) (accessToken, refreshToken string, err error) {
	accessToken, err = s.IssueToken(user.ID, user.Role, s.accessTTL, false)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.IssueToken(user.ID, user.Role, s.refreshTTL, true)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken verifies signature and expiry and returns the claims.
// Any failure yields ErrInvalidToken; callers never see partial or
// empty claims, and a token signed with a different algorithm or
// secret is rejected deterministically.
func (s *AuthService) ParseToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Register creates a new user account with the default "user" role.
func (s *AuthService) Register(req *model.SignupRequest) (*model.User, error) {
	_, err := s.userRepo.GetUserByEmail(req.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
		PasswordHash: hash,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks up the user by email and verifies the password. The
// password check only runs when a user was found, and both failure
// modes collapse into the same ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*model.User, string, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.GenerateTokenPair(user)
	if err != nil {
		return nil, "", "", err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return user, accessToken, refreshToken, nil
}

// Logout revokes the presented token by jti. The token keeps failing
// the blocklist check for the remainder of its natural expiry window.
func (s *AuthService) Logout(ctx context.Context, claims *model.AppClaims) error {
	return s.blocklist.Revoke(ctx, claims.ID)
}

// RefreshAccessToken issues a new access token from validated refresh
// token claims. The role embedded in the refresh token is carried
// over; a role change only shows up after the next login.
func (s *AuthService) RefreshAccessToken(claims *model.AppClaims) (string, error) {
	return s.IssueToken(claims.UserID, claims.Role, s.accessTTL, false)
}
