package models

// RegisterPublicRequest — тело запроса регистрации публичного пользователя.
type RegisterPublicRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=9,max=15"`
	Password string `json:"password" validate:"required,min=8"`
}

// LookupUniversityIDRequest — тело запроса проверки университетского ID.
type LookupUniversityIDRequest struct {
	UniversityID string `json:"university_id" validate:"required,len=8,numeric"`
}

// RegisterUniversityRequest — тело запроса регистрации университетского
// пользователя. Идентификационные поля копируются из справочника.
type RegisterUniversityRequest struct {
	UniversityID string `json:"university_id" validate:"required,len=8,numeric"`
	PIN          string `json:"pin" validate:"required,min=4"`
}

// LoginRequest — полиморфное тело входа: либо email+password,
// либо university_id+pin. Диспетчеризация по заполненным полям
// выполняется явно в сервисе авторизации.
type LoginRequest struct {
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Password     string `json:"password,omitempty"`
	UniversityID string `json:"university_id,omitempty" validate:"omitempty,len=8,numeric"`
	PIN          string `json:"pin,omitempty"`
}

// SubscribeRequest — тело запроса оформления подписки.
type SubscribeRequest struct {
	PlanID    int  `json:"plan_id" validate:"required,gt=0"`
	AutoRenew bool `json:"auto_renew,omitempty"`
}
