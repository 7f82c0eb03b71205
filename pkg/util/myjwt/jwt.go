package myjwt

import (
	"errors"
	"time"

	"ContactBook/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Uuid     string `json:"uuid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Signer 负责签发和校验 HS256 token
type Signer struct {
	key         []byte
	expireHours int
	issuer      string
	now         func() time.Time
}

func NewSigner(conf config.JwtConfig, appName string) (*Signer, error) {
	if conf.Key == "" {
		return nil, errors.New("jwt key is empty")
	}

	expireHours := conf.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}

	issuer := conf.Issuer
	if issuer == "" {
		issuer = appName
	}

	return &Signer{
		key:         []byte(conf.Key),
		expireHours: expireHours,
		issuer:      issuer,
		now:         time.Now,
	}, nil
}

func (s *Signer) GenerateToken(uuid string, username string) (string, error) {
	now := s.now()
	claims := CustomClaims{
		Uuid:     uuid,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *Signer) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
