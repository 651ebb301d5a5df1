package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

func CookieName() string {
	if name := viper.GetString("security.cookie_name"); len(name) > 0 {
		return name
	}
	return "jwt"
}

func CookieMaxAge() time.Duration {
	if secs := viper.GetInt("security.cookie_max_age"); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 15 * 24 * time.Hour
}

func IssueToken(accountID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": accountID,
		"exp":        time.Now().Add(CookieMaxAge()).Unix(),
	})

	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.jwt_secret")), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	accountID, ok := claims["account_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token subject")
	}

	return uint(accountID), nil
}
