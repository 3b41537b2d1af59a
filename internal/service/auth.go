package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"leo-furniture-api/internal/cache"
	"leo-furniture-api/internal/model"
	"leo-furniture-api/internal/repository"
	"leo-furniture-api/pkg/apierror"
)

// revokedKeyPrefix namespaces revoked token IDs in the cache.
const revokedKeyPrefix = "revoked:"

// Claims are the JWT claims issued at login.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles registration, login and token revocation. The bearer
// token is an opaque credential passed explicitly on every request; nothing
// is read from ambient state.
type AuthService struct {
	users    repository.UserRepository
	revoked  cache.Cache
	secret   string
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, revoked cache.Cache, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		revoked:  revoked,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// RegisterInput is the typed input for account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration fields.
func (in RegisterInput) Validate() error {
	var details []apierror.FieldError
	if in.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		details = append(details, apierror.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(in.Password) < 6 {
		details = append(details, apierror.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(details) > 0 {
		return apierror.Validation("invalid registration", details...)
	}
	return nil
}

// Register creates a new account. Emails are stored lowercased; a repeated
// email fails with a conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, in.Name, strings.ToLower(in.Email), string(hash), model.RoleUser)
	if err == repository.ErrDuplicate {
		return nil, apierror.Conflict("Email already used")
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[AuthService] Registered user %s (id=%d)", user.Email, user.ID)
	return user, nil
}

// LoginInput is the typed input for login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies the credentials and issues a signed bearer token. The same
// error is returned for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		return "", apierror.Validation("email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apierror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		log.Printf("[AuthService] Failed login for %s", user.Email)
		return "", apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return token, nil
}

// generateToken signs a JWT with a unique JTI so individual tokens can be
// revoked later.
func (s *AuthService) generateToken(user *model.User) (string, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken parses and verifies a bearer token, rejecting revoked ones.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, apierror.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apierror.Unauthorized("Invalid or expired token")
	}

	revoked, err := s.revoked.Exists(ctx, revokedKeyPrefix+claims.ID)
	if err != nil {
		return nil, fmt.Errorf("checking token revocation: %w", err)
	}
	if revoked {
		return nil, apierror.Unauthorized("Token has been revoked")
	}

	return claims, nil
}

// Logout revokes the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Set(ctx, revokedKeyPrefix+claims.ID, []byte("1"), ttl)
}

// generateJTI creates a random token ID.
func generateJTI() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
