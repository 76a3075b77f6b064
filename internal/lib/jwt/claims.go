// Package jwt реализует генерацию и парсинг JWT токенов сессии
// с пользовательскими claim полями платформы.
//
// Maker определяет интерфейс для создания и проверки токенов,
// MakerImpl — конкретная реализация с секретным ключом, TTL,
// издателем и аудиторией.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен с uid, типом, email и ролью пользователя
	GenerateToken(userUID, userType, email, role string) (string, error)
	// ParseToken возвращает *CustomClaims, если токен корректен
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker. Подпись HS256, проверяются
// срок действия, издатель и аудитория.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
	issuer    string        // Ожидаемый издатель
	audience  string        // Ожидаемая аудитория
}

// NewMaker создаёт новый экземпляр MakerImpl.
func NewMaker(secretKey string, ttl time.Duration, issuer, audience string) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		issuer:    issuer,
		audience:  audience,
	}
}
