// Package models содержит доменные структуры платформы: пользователей,
// тарифные планы, подписки и платёжные транзакции.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Типы пользователей платформы.
const (
	UserTypeStudent = "student"
	UserTypeStaff   = "staff"
	UserTypePublic  = "public"
)

// Роли пользователей. Admin получает доступ к подтверждению walk-in оплат.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя платформы.
// Публичный пользователь регистрируется по email и паролю,
// университетский — по восьмизначному ID и PIN-коду.
type User struct {
	UID          string  // Уникальный идентификатор пользователя
	FullName     string  // Полное имя
	Email        string  // Электронная почта
	Phone        string  // Номер телефона
	UniversityID *string // Университетский ID (nil для публичных пользователей)
	SecretHash   string  // bcrypt-хэш пароля или PIN-кода
	UserType     string  // student, staff или public
	Role         string  // user или admin
	IsActive     bool    // Флаг мягкой деактивации, пользователи не удаляются
	CreatedAt    time.Time
}

// PublicView возвращает представление пользователя без секретных полей —
// именно в таком виде пользователь отдаётся наружу.
func (u User) PublicView() map[string]any {
	return map[string]any{
		"uid":           u.UID,
		"full_name":     u.FullName,
		"email":         u.Email,
		"phone":         u.Phone,
		"university_id": u.UniversityID,
		"user_type":     u.UserType,
		"role":          u.Role,
		"created_at":    u.CreatedAt,
	}
}
