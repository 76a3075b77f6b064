package models

import "time"

// Статусы записи в университетском справочнике.
const (
	DirectoryStatusActive    = "active"
	DirectoryStatusGraduated = "graduated"
	DirectoryStatusInactive  = "inactive"
	DirectoryStatusSuspended = "suspended"
)

// UniversityDirectoryEntry — запись внешнего университетского справочника.
// Справочник только для чтения: данные копируются в пользователя
// один раз при регистрации, без последующей синхронизации.
type UniversityDirectoryEntry struct {
	UniversityID string     // Восьмизначный университетский ID
	FullName     string     // Полное имя
	Email        string     // Электронная почта
	Phone        string     // Номер телефона
	Role         string     // student или staff
	Status       string     // active, graduated, inactive, suspended
	ExpiryDate   *time.Time // Дата окончания обучения (nil для сотрудников)
}

// IsExpired сообщает, истекла ли запись. Записи сотрудников не истекают,
// студенческая запись считается истекшей при неактивном статусе
// или прошедшей дате окончания.
func (e UniversityDirectoryEntry) IsExpired(now time.Time) bool {
	if e.Role == UserTypeStaff {
		return false
	}
	if e.Status != DirectoryStatusActive {
		return true
	}
	if e.ExpiryDate != nil && e.ExpiryDate.Before(now) {
		return true
	}
	return false
}
