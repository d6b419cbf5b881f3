package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/ledger-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(email string, userID int64) (string, time.Time, error)
	Authenticate(tokenString string) (*Identity, error)
}

// Identity is the verified content of a bearer token.
type Identity struct {
	UserID int64
	Email  string
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID int64  `json:"userId"`
}

type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
		now:    time.Now,
	}
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.expiry
}

// Issue signs a token binding email and userID, valid for the configured expiry.
func (ts *TokenService) Issue(email string, userID int64) (string, time.Time, error) {
	now := ts.now()
	expiresAt := now.Add(ts.expiry)

	claims := JWTCustomClaims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Authenticate parses and validates the token and only then returns its claims.
// Malformed tokens, foreign signatures, non-HMAC algorithms and expired tokens are
// all reported as ErrInvalidToken.
func (ts *TokenService) Authenticate(tokenString string) (*Identity, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Email == "" {
		return nil, autherror.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// Verify reports whether tokenString is valid and was issued for expectedEmail.
// It never returns an error; every failure is false.
func (ts *TokenService) Verify(tokenString, expectedEmail string) bool {
	identity, err := ts.Authenticate(tokenString)
	if err != nil {
		return false
	}
	return identity.Email == expectedEmail
}
