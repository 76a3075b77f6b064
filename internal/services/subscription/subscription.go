// Package subscription содержит контроллер жизненного цикла абонемента:
// создание подписки, проверка оплаты через шлюз или на стойке
// и обработка webhook-событий. Состояния: pending -> active | cancelled,
// оба терминальные; payment_status — параллельное подсостояние.
package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nanaosei/campusfit-backend/internal/lib/money"
	"github.com/nanaosei/campusfit-backend/internal/lib/reference"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/storage"
)

// ReferencePrefix — префикс ссылок платежа этого сервиса.
const ReferencePrefix = "CF"

// Ошибки бизнес-уровня жизненного цикла подписки.
var (
	// ErrPlanNotFound — тариф отсутствует.
	ErrPlanNotFound = errors.New("subscription plan not found")
	// ErrPlanMismatch — тариф предназначен другому типу пользователя.
	ErrPlanMismatch = errors.New("plan is not available for this user type")
	// ErrAlreadyActive — у пользователя уже есть активная подписка.
	ErrAlreadyActive = errors.New("user already has an active subscription")
	// ErrSubscriptionNotFound — подписка по ссылке платежа не найдена.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrPaymentFailed — шлюз сообщил неуспешный статус платежа.
	ErrPaymentFailed = errors.New("payment was not successful")
	// ErrAmountMismatch — оплаченная сумма расходится с ценой тарифа
	// больше чем на допуск.
	ErrAmountMismatch = errors.New("paid amount does not match plan price")
	// ErrWalkInNotAllowed — walk-in активацию подтверждает только админ.
	ErrWalkInNotAllowed = errors.New("walk-in activation requires admin role")
	// ErrUnknownUserType — неизвестный тип пользователя в фильтре тарифов.
	ErrUnknownUserType = errors.New("unknown user type")
)

// Repository определяет методы хранилища, нужные контроллеру.
type Repository interface {
	GetPlan(ctx context.Context, id int) (*models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error)
	ListPlansByUserType(ctx context.Context, userType string) ([]*models.SubscriptionPlan, error)
	CreateSubscription(ctx context.Context, sub models.UserSubscription) (int, error)
	GetSubscriptionByID(ctx context.Context, id int) (*models.UserSubscription, error)
	GetSubscriptionByReference(ctx context.Context, ref string) (*models.UserSubscription, error)
	GetActiveSubscriptionByUserUID(ctx context.Context, userUID string) (*models.UserSubscription, error)
	ListSubscriptionsByUserUID(ctx context.Context, userUID string) ([]*models.UserSubscription, error)
	ActivateSubscription(ctx context.Context, id int, start, end time.Time) (bool, error)
	CancelSubscription(ctx context.Context, id int) error
	CreateTransaction(ctx context.Context, tx models.PaymentTransaction) (int, error)
	UpdateTransaction(ctx context.Context, ref, status string, gatewayResponse json.RawMessage, paidAt *time.Time) error
}

// Gateway описывает операции платёжного шлюза.
type Gateway interface {
	Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error)
	Verify(ctx context.Context, ref string) (*paystack.VerifyData, error)
}

// Cache описывает методы для кэширования справочника тарифов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Notifier публикует события активации. Сбой публикации не влияет
// на результат операции.
type Notifier interface {
	SubscriptionActivated(sub *models.UserSubscription) error
}

// Config — настройки контроллера, передаются явно.
type Config struct {
	Currency    string // Валюта платежей, например GHS
	CallbackURL string // Куда шлюз возвращает пользователя после оплаты
}

// Service реализует контроллер жизненного цикла подписки.
type Service struct {
	repo     Repository
	gateway  Gateway
	cache    Cache
	notifier Notifier
	cfg      Config
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, gateway Gateway, cache Cache, notifier Notifier, cfg Config, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		gateway:  gateway,
		cache:    cache,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
	}
}

// CreateResult — результат оформления подписки. Для walk-in тарифов
// PaymentURL пуст, Message содержит инструкцию оплатить на стойке.
type CreateResult struct {
	Subscription *models.UserSubscription `json:"subscription"`
	Reference    string                   `json:"reference"`
	PaymentURL   string                   `json:"payment_url,omitempty"`
	AccessCode   string                   `json:"access_code,omitempty"`
	Message      string                   `json:"message,omitempty"`
}

// ListPlans возвращает справочник тарифов через кеш.
func (s *Service) ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return s.cachedPlans(ctx, "plans:all", func() ([]*models.SubscriptionPlan, error) {
		return s.repo.ListPlans(ctx)
	})
}

// ListPlansByUserType возвращает тарифы для заданного типа пользователя.
func (s *Service) ListPlansByUserType(ctx context.Context, userType string) ([]*models.SubscriptionPlan, error) {
	switch userType {
	case models.UserTypeStudent, models.UserTypeStaff, models.UserTypePublic:
	default:
		return nil, ErrUnknownUserType
	}
	return s.cachedPlans(ctx, "plans:"+userType, func() ([]*models.SubscriptionPlan, error) {
		return s.repo.ListPlansByUserType(ctx, userType)
	})
}

func (s *Service) cachedPlans(_ context.Context, key string, load func() ([]*models.SubscriptionPlan, error)) ([]*models.SubscriptionPlan, error) {
	var cached []*models.SubscriptionPlan
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read plans from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	plans, err := load()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, plans, time.Hour); err != nil {
		s.log.Warn("failed to cache plans", slog.String("key", key), sl.Err(err))
	}
	return plans, nil
}

// ListByUser возвращает все подписки пользователя.
func (s *Service) ListByUser(ctx context.Context, userUID string) ([]*models.UserSubscription, error) {
	return s.repo.ListSubscriptionsByUserUID(ctx, userUID)
}

// ActiveByUser возвращает активную подписку пользователя либо
// ErrSubscriptionNotFound.
func (s *Service) ActiveByUser(ctx context.Context, userUID string) (*models.UserSubscription, error) {
	sub, err := s.repo.GetActiveSubscriptionByUserUID(ctx, userUID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	return sub, err
}

// Create оформляет подписку: проверяет тариф и отсутствие активной
// подписки, сохраняет запись в pending и, для онлайн-тарифов,
// инициализирует транзакцию в шлюзе. Walk-in тарифы шлюз не трогают.
func (s *Service) Create(ctx context.Context, user *models.User, req models.SubscribeRequest) (*CreateResult, error) {
	const op = "subscription.Create"

	plan, err := s.repo.GetPlan(ctx, req.PlanID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if plan.UserType != user.UserType {
		return nil, ErrPlanMismatch
	}

	_, err = s.repo.GetActiveSubscriptionByUserUID(ctx, user.UID)
	if err == nil {
		return nil, ErrAlreadyActive
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ref := reference.New(ReferencePrefix)
	sub := models.UserSubscription{
		UserUID:          user.UID,
		PlanID:           plan.ID,
		Status:           models.SubscriptionStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		PaymentReference: ref,
		Amount:           plan.Price,
		Currency:         s.cfg.Currency,
		AutoRenew:        req.AutoRenew,
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.ID = id
	sub.CreatedAt = time.Now()

	s.log.Info("created pending subscription",
		slog.Int("id", id), slog.String("reference", ref))

	if plan.IsWalkIn() {
		return &CreateResult{
			Subscription: &sub,
			Reference:    ref,
			Message:      "please pay at the front desk to activate your membership",
		}, nil
	}

	initData, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Amount:      money.MajorToMinor(plan.Price),
		Email:       user.Email,
		Reference:   ref,
		Currency:    s.cfg.Currency,
		CallbackURL: s.cfg.CallbackURL,
		Metadata: map[string]any{
			"subscription_id": id,
			"plan_id":         plan.ID,
			"user_uid":        user.UID,
		},
	})
	if err != nil {
		// Известный сбой шлюза: подписка не должна зависнуть в pending
		s.log.Error("gateway initialize failed", slog.Int("id", id), sl.Err(err))
		if cancelErr := s.repo.CancelSubscription(ctx, id); cancelErr != nil {
			s.log.Error("failed to cancel subscription after gateway error",
				slog.Int("id", id), sl.Err(cancelErr))
		}
		return nil, err
	}

	if _, err := s.repo.CreateTransaction(ctx, models.PaymentTransaction{
		Reference:      ref,
		SubscriptionID: id,
		UserUID:        user.UID,
		Amount:         plan.Price,
		Currency:       s.cfg.Currency,
		Status:         models.PaymentStatusPending,
		Method:         models.PaymentMethodOnline,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &CreateResult{
		Subscription: &sub,
		Reference:    ref,
		PaymentURL:   initData.AuthorizationURL,
		AccessCode:   initData.AccessCode,
	}, nil
}

// Verify проверяет оплату по ссылке платежа. Уже активная подписка
// возвращается без повторной проверки. Walk-in тарифы активируются
// безусловно, но только по запросу администратора; онлайн-тарифы
// сверяются со шлюзом и допуском по сумме.
func (s *Service) Verify(ctx context.Context, ref, callerRole string) (*models.UserSubscription, error) {
	const op = "subscription.Verify"

	sub, err := s.repo.GetSubscriptionByReference(ctx, ref)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sub.Status == models.SubscriptionStatusActive {
		return sub, nil
	}

	plan, err := s.repo.GetPlan(ctx, sub.PlanID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if plan.IsWalkIn() {
		if callerRole != models.RoleAdmin {
			return nil, ErrWalkInNotAllowed
		}
		now := time.Now()
		if _, err := s.repo.CreateTransaction(ctx, models.PaymentTransaction{
			Reference:      ref,
			SubscriptionID: sub.ID,
			UserUID:        sub.UserUID,
			Amount:         plan.Price,
			Currency:       sub.Currency,
			Status:         models.PaymentStatusSuccess,
			Method:         models.PaymentMethodWalkIn,
			PaidAt:         &now,
		}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return s.activate(ctx, sub, plan)
	}

	verifyData, err := s.gateway.Verify(ctx, ref)
	if err != nil {
		s.log.Error("gateway verify failed", slog.String("reference", ref), sl.Err(err))
		if cancelErr := s.repo.CancelSubscription(ctx, sub.ID); cancelErr != nil {
			s.log.Error("failed to cancel subscription after gateway error",
				slog.Int("id", sub.ID), sl.Err(cancelErr))
		}
		if txErr := s.repo.UpdateTransaction(ctx, ref, models.PaymentStatusFailed, nil, nil); txErr != nil {
			s.log.Error("failed to mark transaction failed", slog.String("reference", ref), sl.Err(txErr))
		}
		return nil, err
	}
	if verifyData.Status != "success" {
		return nil, ErrPaymentFailed
	}

	paid := money.MinorToMajor(verifyData.Amount)
	if !money.Within(paid, plan.Price, money.Tolerance) {
		return nil, ErrAmountMismatch
	}

	if err := s.recordSuccess(ctx, ref, verifyData); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.activate(ctx, sub, plan)
}

// ProcessWebhook обрабатывает событие шлюза. Подпись уже проверена
// на границе HTTP. Неизвестные события подтверждаются без изменений;
// повторная доставка по активной подписке — no-op.
func (s *Service) ProcessWebhook(ctx context.Context, event *paystack.WebhookEvent) error {
	const op = "subscription.ProcessWebhook"

	if event.Event != "charge.success" {
		s.log.Info("ignored webhook event", slog.String("event", event.Event))
		return nil
	}

	sub, err := s.repo.GetSubscriptionByReference(ctx, event.Data.Reference)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrSubscriptionNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if sub.Status == models.SubscriptionStatusActive {
		return nil
	}

	plan, err := s.repo.GetPlan(ctx, sub.PlanID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPlanNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	paid := money.MinorToMajor(event.Data.Amount)
	if !money.Within(paid, plan.Price, money.Tolerance) {
		return ErrAmountMismatch
	}

	if err := s.recordSuccess(ctx, event.Data.Reference, &event.Data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.activate(ctx, sub, plan); err != nil {
		return err
	}
	return nil
}

// activate переводит подписку в active условным обновлением.
// Проигранная гонка с параллельной активацией не ошибка: перечитываем
// запись и возвращаем её текущее состояние.
func (s *Service) activate(ctx context.Context, sub *models.UserSubscription, plan *models.SubscriptionPlan) (*models.UserSubscription, error) {
	const op = "subscription.activate"

	start := time.Now()
	end := start.AddDate(0, 0, plan.DurationDays)
	ok, err := s.repo.ActivateSubscription(ctx, sub.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.repo.GetSubscriptionByID(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.log.Info("subscription already transitioned", slog.Int("id", sub.ID),
			slog.String("status", current.Status))
		return current, nil
	}

	s.log.Info("activated subscription", slog.Int("id", sub.ID),
		slog.Time("end_date", end))
	if err := s.notifier.SubscriptionActivated(current); err != nil {
		s.log.Warn("failed to publish activation event", slog.Int("id", sub.ID), sl.Err(err))
	}
	return current, nil
}

func (s *Service) recordSuccess(ctx context.Context, ref string, data *paystack.VerifyData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var paidAt *time.Time
	if data.PaidAt != "" {
		if ts, parseErr := time.Parse(time.RFC3339, data.PaidAt); parseErr == nil {
			paidAt = &ts
		}
	}
	return s.repo.UpdateTransaction(ctx, ref, models.PaymentStatusSuccess, raw, paidAt)
}
