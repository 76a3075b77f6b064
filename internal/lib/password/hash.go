// Package password реализует безопасное хеширование и проверку секретов
// пользователя: пароля публичного аккаунта или PIN-кода университетского.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash принимает секрет пользователя и возвращает его bcrypt‑хэш.
func GetHash(secret string) (string, error) {
	const op = "password.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым секретом.
// Возвращает nil при совпадении, иначе — ошибку.
func CompareHash(originalHash, externalSecret string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalSecret)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
