// Package crypto содержит криптографические примитивы,
// используемые сервером task planner.
//
// В частности, пакет отвечает за:
//   - генерацию и подпись JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - хэширование паролей и refresh-токенов.
package crypto

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// AccessClaims — полезная нагрузка access-токена.
//
// Помимо стандартных полей токен несёт name и email пользователя:
// middleware восстанавливает Identity целиком из подписанных claims,
// без дополнительного похода в базу.
type AccessClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит:
//   - iss (Issuer), aud (Audience)
//   - sub — id пользователя (десятичная строка)
//   - name, email — данные Identity
//   - iat, exp
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID int64, name, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
		Name:  name,
		Email: email,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
