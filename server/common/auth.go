package common

import (
	"time"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

var SecretKey []byte

type UserClaims struct {
	Username   string `json:"username"`
	SessionKey string `json:"session_key"`
	jwt.RegisteredClaims
}

// GenerateToken issues the JWT for a session. The token is only half
// of the credential: middleware also checks the session row exists.
func GenerateToken(user *model.User, sessionKey string) (tokenString string, err error) {
	claims := UserClaims{
		Username:   user.Username,
		SessionKey: sessionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(conf.Conf.TokenExpiresIn) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString(SecretKey)
	return tokenString, errors.WithStack(err)
}

func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return SecretKey, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("validate token failed")
}
