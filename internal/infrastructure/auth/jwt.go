package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var ErrWrongTokenType = errors.New("unexpected token type")

// Claims carries the session identity. OrganizationID is absent for system
// admin sessions.
type Claims struct {
	UserID          string    `json:"user_id"`
	SessionID       string    `json:"session_id"`
	OrganizationID  *string   `json:"organization_id,omitempty"`
	IsSystemAdmin   bool      `json:"is_system_admin,omitempty"`
	SystemAdminRole string    `json:"system_admin_role,omitempty"`
	TokenType       TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Subject is the identity embedded in both tokens of a pair.
type Subject struct {
	UserID          string
	SessionID       string
	OrganizationID  *string
	IsSystemAdmin   bool
	SystemAdminRole string
}

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int64
	RefreshExpiresAt time.Time
}

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessExpMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshExpDays) * 24 * time.Hour,
	}
}

func (s *JWTService) sign(sub Subject, typ TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:          sub.UserID,
		SessionID:       sub.SessionID,
		OrganizationID:  sub.OrganizationID,
		IsSystemAdmin:   sub.IsSystemAdmin,
		SystemAdminRole: sub.SystemAdminRole,
		TokenType:       typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.New(),
			Subject:   sub.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

func (s *JWTService) Generate(sub Subject) (*TokenPair, error) {
	now := biztime.NowUTC()

	access, err := s.sign(sub, TokenTypeAccess, now, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(sub, TokenTypeRefresh, now, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        int64(s.accessTTL / time.Second),
		RefreshExpiresAt: now.Add(s.refreshTTL),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(biztime.Now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess accepts only access tokens.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verifyType(tokenString, TokenTypeAccess)
}

// VerifyRefresh accepts only refresh tokens.
func (s *JWTService) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verifyType(tokenString, TokenTypeRefresh)
}

func (s *JWTService) verifyType(tokenString string, want TokenType) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}
