package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

// Claims carries the user profile inside an ID token. The subject is the
// user ID.
type Claims struct {
	jwt.RegisteredClaims
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Role       models.Role        `json:"role"`
	Ministries models.MinistrySet `json:"ministries"`
}

const issuer = "churchhub"

// GenerateToken signs an ID token for u valid for ttl.
func GenerateToken(u models.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Ministries: u.Ministries,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates tokenString and rebuilds the user it describes.
// Expired tokens yield common.ErrTokenExpired; any other failure wraps
// common.ErrInvalidToken.
func ParseToken(tokenString string, secret []byte) (*models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, common.ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return nil, common.ErrInvalidToken
	}

	return &models.User{
		ID:         claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Role:       claims.Role,
		Ministries: claims.Ministries,
	}, nil
}
