package auth

import (
	"errors"
	"fmt"
	"time"

	"staffeval/config"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var ErrWrongTokenType = errors.New("wrong token type")

type Claims struct {
	UserId  int       `json:"user_id"`
	StaffId *int      `json:"staff_id"`
	Roles   []string  `json:"roles"`
	Type    TokenType `json:"type"`
	Exp     int64     `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims type %T", jwtClaims)
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return fmt.Errorf("token has no user_id")
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return fmt.Errorf("token has no exp")
	}
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	claims.StaffId = nil
	if staffId, ok := mapClaims["staff_id"].(float64); ok {
		id := int(staffId)
		claims.StaffId = &id
	}
	roles := []string{}
	if rawRoles, ok := mapClaims["roles"].([]interface{}); ok {
		for _, role := range rawRoles {
			if r, ok := role.(string); ok {
				roles = append(roles, r)
			}
		}
	}
	claims.Roles = roles
	tokenType, _ := mapClaims["type"].(string)
	claims.Type = TokenType(tokenType)
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

// Actor is the authenticated caller as seen by the services.
func (claims *Claims) Actor() Actor {
	return Actor{UserId: claims.UserId, StaffId: claims.StaffId, Roles: claims.Roles}
}

func secret(tokenType TokenType) []byte {
	if tokenType == RefreshToken {
		return []byte(config.Env().JWTSecret + "-refresh")
	}
	return []byte(config.Env().JWTSecret)
}

func CreateToken(tokenType TokenType, userId int, staffId *int, roles []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId,
		"roles":   roles,
		"type":    string(tokenType),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	if staffId != nil {
		claims["staff_id"] = *staffId
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret(tokenType))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseToken verifies signature, expiry and type of tokenString.
func ParseToken(tokenString string, tokenType TokenType) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret(tokenType), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
