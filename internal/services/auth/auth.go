// Package auth содержит бизнес-логику регистрации, входа и проверки токенов:
// публичные пользователи с email и паролем, университетские — с ID и PIN-кодом
// по данным внешнего справочника.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nanaosei/campusfit-backend/internal/lib/jwt"
	"github.com/nanaosei/campusfit-backend/internal/lib/password"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/storage"
)

// Ошибки бизнес-уровня. Обработчики сопоставляют их HTTP-статусам.
var (
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAlreadyRegistered — университетский ID уже зарегистрирован.
	ErrAlreadyRegistered = errors.New("university id already registered")
	// ErrDirectoryNotFound — ID отсутствует во внешнем справочнике.
	ErrDirectoryNotFound = errors.New("university id not found in directory")
	// ErrRecordExpired — студенческая запись справочника истекла.
	ErrRecordExpired = errors.New("university record expired")
	// ErrInvalidCredentials — неверные учётные данные. Сообщение едино
	// для всех случаев, существование пользователя не раскрывается.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен не прошёл проверку.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound — пользователь из токена не существует или деактивирован.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями
// и университетским справочником в базе данных.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUniversityID(ctx context.Context, universityID string) (*models.User, error)
	GetDirectoryEntry(ctx context.Context, universityID string) (*models.UniversityDirectoryEntry, error)
}

// LookupResult — результат проверки университетского ID.
// Для истекших студенческих записей Data не заполняется,
// сообщение направляет пользователя в деканат.
type LookupResult struct {
	Found     bool                             `json:"found"`
	IsExpired bool                             `json:"is_expired,omitempty"`
	Message   string                           `json:"message,omitempty"`
	Data      *models.UniversityDirectoryEntry `json:"data,omitempty"`
}

// AuthResult — пользователь без секретных полей плюс токен сессии.
type AuthResult struct {
	User  map[string]any `json:"user"`
	Token string         `json:"token"`
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// RegisterPublic создает публичного пользователя с хэшированием пароля.
// Формат полей проверяется валидатором на границе запроса.
func (s *Service) RegisterPublic(ctx context.Context, req models.RegisterPublicRequest) (*AuthResult, error) {
	const op = "auth.RegisterPublic"

	_, err := s.users.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		SecretHash: hashed,
		UserType:   models.UserTypePublic,
		Role:       models.RoleUser,
		IsActive:   true,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid
	user.CreatedAt = time.Now()

	s.log.Info("registered public user", slog.String("uid", uid))
	return s.authResult(user)
}

// LookupUniversityID проверяет университетский ID по внешнему справочнику.
// Операция без побочных эффектов.
func (s *Service) LookupUniversityID(ctx context.Context, universityID string) (*LookupResult, error) {
	const op = "auth.LookupUniversityID"

	entry, err := s.users.GetDirectoryEntry(ctx, universityID)
	if errors.Is(err, storage.ErrNotFound) {
		return &LookupResult{Found: false, Message: "university id not found"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if entry.IsExpired(time.Now()) {
		return &LookupResult{
			Found:     true,
			IsExpired: true,
			Message:   "your university record has expired, please contact the registrar",
		}, nil
	}
	return &LookupResult{Found: true, Data: entry}, nil
}

// RegisterUniversity создает университетского пользователя, копируя
// идентификационные поля из снимка справочника и хэшируя PIN.
func (s *Service) RegisterUniversity(ctx context.Context, req models.RegisterUniversityRequest) (*AuthResult, error) {
	const op = "auth.RegisterUniversity"

	_, err := s.users.GetUserByUniversityID(ctx, req.UniversityID)
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entry, err := s.users.GetDirectoryEntry(ctx, req.UniversityID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrDirectoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if entry.IsExpired(time.Now()) {
		return nil, ErrRecordExpired
	}

	hashed, err := password.GetHash(req.PIN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	universityID := entry.UniversityID
	user := models.User{
		FullName:     entry.FullName,
		Email:        entry.Email,
		Phone:        entry.Phone,
		UniversityID: &universityID,
		SecretHash:   hashed,
		UserType:     entry.Role,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid
	user.CreatedAt = time.Now()

	s.log.Info("registered university user",
		slog.String("uid", uid), slog.String("user_type", user.UserType))
	return s.authResult(user)
}

// Login выполняет вход по одной из двух форм учётных данных:
// email+password либо university_id+pin. Диспетчеризация явная,
// по заполненным полям запроса.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	const op = "auth.Login"

	var (
		user *models.User
		err  error
	)
	var secret string
	switch {
	case req.UniversityID != "" && req.PIN != "":
		user, err = s.users.GetUserByUniversityID(ctx, req.UniversityID)
		secret = req.PIN
	case req.Email != "" && req.Password != "":
		user, err = s.users.GetUserByEmail(ctx, req.Email)
		secret = req.Password
	default:
		return nil, ErrInvalidCredentials
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.SecretHash, secret); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResult(*user)
}

// VerifyToken проверяет токен и перечитывает пользователя по uid
// из полезной нагрузки: деактивированные и удалённые отклоняются.
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.VerifyToken"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetUserByUID(ctx, claims.UserUID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) authResult(user models.User) (*AuthResult, error) {
	token, err := s.jwtMaker.GenerateToken(user.UID, user.UserType, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.authResult: %w", err)
	}
	return &AuthResult{
		User:  user.PublicView(),
		Token: token,
	}, nil
}
