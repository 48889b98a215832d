package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
)

// IdentitySecret 与外部身份服务共享的签名密钥。先写死，后面放 config
var IdentitySecret = []byte("identity-secret")

const IdentityTokenTTL = time.Hour

// IdentityClaims 身份服务签发的断言：principal 即稳定用户名，本子系统完全信任
type IdentityClaims struct {
	Principal string `json:"principal"`
	jwt.RegisteredClaims
}

// MintIdentityToken 签发身份 token（开发/测试用，线上由身份服务签发）
func MintIdentityToken(principal string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Principal: principal,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(IdentityTokenTTL)),
			Subject:   "identity",
		},
	})
	return t.SignedString(IdentitySecret)
}

// ParsePrincipal 校验签名与有效期，取出 principal
func ParsePrincipal(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &IdentityClaims{}, func(t *jwt.Token) (any, error) {
		return IdentitySecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return "", ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", err
		}
	}
	if !token.Valid {
		return "", ErrTokenParseFailure
	}
	claims := token.Claims.(*IdentityClaims)
	if claims.Principal == "" {
		return "", ErrTokenInvalid
	}
	return claims.Principal, nil
}
