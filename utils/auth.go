package utils

import (
	"errors"
	"fmt"
	"time"

	"go-booking/models"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JWT Secret Key, set from JWT_SECRET at startup
var JwtKey = []byte("")

// TokenTTL is how long an issued token stays valid
var TokenTTL = 24 * time.Hour

// Claims represents the JWT claims
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a JWT token for a user or an admin
func GenerateJWT(id primitive.ObjectID, role models.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:   id.Hex(),
		Role: string(role),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseJWT verifies tokenStr and resolves the identity it was issued for
func ParseJWT(tokenStr string) (models.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}
	identity, ok := models.NewIdentity(id, models.Role(claims.Role))
	if !ok {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return identity, nil
}
