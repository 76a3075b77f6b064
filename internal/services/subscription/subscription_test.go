package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetPlan(ctx context.Context, id int) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionPlan), args.Error(1)
}
func (m *RepoMock) ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionPlan), args.Error(1)
}
func (m *RepoMock) ListPlansByUserType(ctx context.Context, userType string) ([]*models.SubscriptionPlan, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionPlan), args.Error(1)
}
func (m *RepoMock) CreateSubscription(ctx context.Context, sub models.UserSubscription) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) GetSubscriptionByID(ctx context.Context, id int) (*models.UserSubscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSubscription), args.Error(1)
}
func (m *RepoMock) GetSubscriptionByReference(ctx context.Context, ref string) (*models.UserSubscription, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSubscription), args.Error(1)
}
func (m *RepoMock) GetActiveSubscriptionByUserUID(ctx context.Context, userUID string) (*models.UserSubscription, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSubscription), args.Error(1)
}
func (m *RepoMock) ListSubscriptionsByUserUID(ctx context.Context, userUID string) ([]*models.UserSubscription, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserSubscription), args.Error(1)
}
func (m *RepoMock) ActivateSubscription(ctx context.Context, id int, start, end time.Time) (bool, error) {
	args := m.Called(ctx, id, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) CancelSubscription(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *RepoMock) CreateTransaction(ctx context.Context, tx models.PaymentTransaction) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) UpdateTransaction(ctx context.Context, ref, status string, gatewayResponse json.RawMessage, paidAt *time.Time) error {
	args := m.Called(ctx, ref, status, gatewayResponse, paidAt)
	return args.Error(0)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.InitializeData), args.Error(1)
}
func (m *GatewayMock) Verify(ctx context.Context, ref string) (*paystack.VerifyData, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.VerifyData), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) SubscriptionActivated(sub *models.UserSubscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

type fixture struct {
	repo     *RepoMock
	gateway  *GatewayMock
	cache    *CacheMock
	notifier *NotifierMock
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:     new(RepoMock),
		gateway:  new(GatewayMock),
		cache:    new(CacheMock),
		notifier: new(NotifierMock),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	f.svc = New(f.repo, f.gateway, f.cache, f.notifier,
		Config{Currency: "GHS", CallbackURL: "https://app.campusfit.gh/payments/callback"}, log)
	return f
}

var (
	onlinePlan = &models.SubscriptionPlan{
		ID: 1, Name: "Student Monthly", UserType: models.UserTypeStudent,
		Price: 50.00, DurationDays: 30, DurationKind: models.PlanKindOnline,
	}
	walkInPlan = &models.SubscriptionPlan{
		ID: 7, Name: "Student Walk-in", UserType: models.UserTypeStudent,
		Price: 10.00, DurationDays: 1, DurationKind: models.PlanKindWalkIn,
	}
	student = &models.User{
		UID: "uid-1", Email: "kofi@university.edu.gh",
		UserType: models.UserTypeStudent, Role: models.RoleUser,
	}
)

func TestCreate(t *testing.T) {
	t.Run("online plan initializes gateway", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.repo.On("GetActiveSubscriptionByUserUID", mock.Anything, "uid-1").
			Return(nil, storage.ErrNotFound).Once()
		f.repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(sub models.UserSubscription) bool {
			return sub.Status == models.SubscriptionStatusPending &&
				sub.PaymentStatus == models.PaymentStatusPending &&
				sub.Amount == 50.00 &&
				strings.HasPrefix(sub.PaymentReference, "CF_")
		})).Return(11, nil).Once()
		f.gateway.On("Initialize", mock.Anything, mock.MatchedBy(func(req paystack.InitializeRequest) bool {
			return req.Amount == 5000 && req.Email == "kofi@university.edu.gh" && req.Currency == "GHS"
		})).Return(&paystack.InitializeData{
			AuthorizationURL: "https://checkout.paystack.com/abc",
			AccessCode:       "abc",
		}, nil).Once()
		f.repo.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx models.PaymentTransaction) bool {
			return tx.Method == models.PaymentMethodOnline && tx.SubscriptionID == 11
		})).Return(21, nil).Once()

		res, err := f.svc.Create(context.Background(), student, models.SubscribeRequest{PlanID: 1})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc", res.PaymentURL)
		assert.NotEmpty(t, res.Reference)
		f.repo.AssertExpectations(t)
		f.gateway.AssertExpectations(t)
	})

	t.Run("walk-in plan skips gateway", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetPlan", mock.Anything, 7).Return(walkInPlan, nil).Once()
		f.repo.On("GetActiveSubscriptionByUserUID", mock.Anything, "uid-1").
			Return(nil, storage.ErrNotFound).Once()
		f.repo.On("CreateSubscription", mock.Anything, mock.Anything).Return(12, nil).Once()

		res, err := f.svc.Create(context.Background(), student, models.SubscribeRequest{PlanID: 7})
		require.NoError(t, err)
		assert.Empty(t, res.PaymentURL)
		assert.Contains(t, res.Message, "front desk")
		f.gateway.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
		f.repo.AssertExpectations(t)
	})

	t.Run("plan for another user type", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()

		public := &models.User{UID: "uid-9", UserType: models.UserTypePublic}
		_, err := f.svc.Create(context.Background(), public, models.SubscribeRequest{PlanID: 1})
		assert.ErrorIs(t, err, ErrPlanMismatch)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetPlan", mock.Anything, 99).Return(nil, storage.ErrNotFound).Once()

		_, err := f.svc.Create(context.Background(), student, models.SubscribeRequest{PlanID: 99})
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("active subscription already exists", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.repo.On("GetActiveSubscriptionByUserUID", mock.Anything, "uid-1").
			Return(&models.UserSubscription{ID: 5, Status: models.SubscriptionStatusActive}, nil).Once()

		_, err := f.svc.Create(context.Background(), student, models.SubscribeRequest{PlanID: 1})
		assert.ErrorIs(t, err, ErrAlreadyActive)
	})

	t.Run("gateway failure cancels pending subscription", func(t *testing.T) {
		f := newFixture()
		gatewayErr := &paystack.GatewayError{Message: "insufficient funds on merchant account"}

		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.repo.On("GetActiveSubscriptionByUserUID", mock.Anything, "uid-1").
			Return(nil, storage.ErrNotFound).Once()
		f.repo.On("CreateSubscription", mock.Anything, mock.Anything).Return(13, nil).Once()
		f.gateway.On("Initialize", mock.Anything, mock.Anything).Return(nil, gatewayErr).Once()
		f.repo.On("CancelSubscription", mock.Anything, 13).Return(nil).Once()

		_, err := f.svc.Create(context.Background(), student, models.SubscribeRequest{PlanID: 1})
		var ge *paystack.GatewayError
		require.ErrorAs(t, err, &ge)
		f.repo.AssertExpectations(t)
	})
}

func TestVerify(t *testing.T) {
	pendingSub := func() *models.UserSubscription {
		return &models.UserSubscription{
			ID: 11, UserUID: "uid-1", PlanID: 1,
			Status:           models.SubscriptionStatusPending,
			PaymentStatus:    models.PaymentStatusPending,
			PaymentReference: "CF_1735689600123_9f3cba01",
			Amount:           50.00, Currency: "GHS",
		}
	}
	activeSub := &models.UserSubscription{
		ID: 11, UserUID: "uid-1", PlanID: 1,
		Status:           models.SubscriptionStatusActive,
		PaymentStatus:    models.PaymentStatusSuccess,
		PaymentReference: "CF_1735689600123_9f3cba01",
	}
	const ref = "CF_1735689600123_9f3cba01"

	t.Run("already active is idempotent", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(activeSub, nil).Once()

		got, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, models.SubscriptionStatusActive, got.Status)
		f.gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("successful online payment activates", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub(), nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.gateway.On("Verify", mock.Anything, ref).Return(&paystack.VerifyData{
			Status: "success", Reference: ref, Amount: 5000, Currency: "GHS",
			PaidAt: "2026-08-29T10:15:00Z",
		}, nil).Once()
		f.repo.On("UpdateTransaction", mock.Anything, ref, models.PaymentStatusSuccess,
			mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.On("ActivateSubscription", mock.Anything, 11, mock.Anything, mock.Anything).
			Return(true, nil).Once()
		f.repo.On("GetSubscriptionByID", mock.Anything, 11).Return(activeSub, nil).Once()
		f.notifier.On("SubscriptionActivated", activeSub).Return(nil).Once()

		got, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, models.SubscriptionStatusActive, got.Status)
		f.repo.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})

	t.Run("lost activation race returns current state", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub(), nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.gateway.On("Verify", mock.Anything, ref).Return(&paystack.VerifyData{
			Status: "success", Reference: ref, Amount: 5000,
		}, nil).Once()
		f.repo.On("UpdateTransaction", mock.Anything, ref, models.PaymentStatusSuccess,
			mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.On("ActivateSubscription", mock.Anything, 11, mock.Anything, mock.Anything).
			Return(false, nil).Once()
		f.repo.On("GetSubscriptionByID", mock.Anything, 11).Return(activeSub, nil).Once()

		got, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, models.SubscriptionStatusActive, got.Status)
		f.notifier.AssertNotCalled(t, "SubscriptionActivated", mock.Anything)
	})

	t.Run("failed gateway status", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub(), nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.gateway.On("Verify", mock.Anything, ref).Return(&paystack.VerifyData{
			Status: "failed", Reference: ref, Amount: 5000,
		}, nil).Once()

		_, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		assert.ErrorIs(t, err, ErrPaymentFailed)
	})

	t.Run("gateway transport failure cancels subscription", func(t *testing.T) {
		f := newFixture()
		gatewayErr := &paystack.GatewayError{Message: "timeout"}

		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub(), nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.gateway.On("Verify", mock.Anything, ref).Return(nil, gatewayErr).Once()
		f.repo.On("CancelSubscription", mock.Anything, 11).Return(nil).Once()
		f.repo.On("UpdateTransaction", mock.Anything, ref, models.PaymentStatusFailed,
			json.RawMessage(nil), (*time.Time)(nil)).Return(nil).Once()

		_, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		var ge *paystack.GatewayError
		assert.ErrorAs(t, err, &ge)
		f.repo.AssertExpectations(t)
	})

	t.Run("amount tolerance", func(t *testing.T) {
		tests := []struct {
			name        string
			amountMinor int
			wantErr     error
		}{
			{name: "exact", amountMinor: 5000},
			{name: "within tolerance", amountMinor: 5001},
			{name: "beyond tolerance", amountMinor: 5002, wantErr: ErrAmountMismatch},
			{name: "underpaid", amountMinor: 4900, wantErr: ErrAmountMismatch},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub(), nil).Once()
				f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
				f.gateway.On("Verify", mock.Anything, ref).Return(&paystack.VerifyData{
					Status: "success", Reference: ref, Amount: tt.amountMinor,
				}, nil).Once()
				if tt.wantErr == nil {
					f.repo.On("UpdateTransaction", mock.Anything, ref, models.PaymentStatusSuccess,
						mock.Anything, mock.Anything).Return(nil).Once()
					f.repo.On("ActivateSubscription", mock.Anything, 11, mock.Anything, mock.Anything).
						Return(true, nil).Once()
					f.repo.On("GetSubscriptionByID", mock.Anything, 11).Return(activeSub, nil).Once()
					f.notifier.On("SubscriptionActivated", mock.Anything).Return(nil).Once()
				}

				_, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("walk-in requires admin", func(t *testing.T) {
		sub := pendingSub()
		sub.PlanID = 7

		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(sub, nil).Once()
		f.repo.On("GetPlan", mock.Anything, 7).Return(walkInPlan, nil).Once()

		_, err := f.svc.Verify(context.Background(), ref, models.RoleUser)
		assert.ErrorIs(t, err, ErrWalkInNotAllowed)
	})

	t.Run("walk-in admin activation records cash transaction", func(t *testing.T) {
		sub := pendingSub()
		sub.PlanID = 7

		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(sub, nil).Once()
		f.repo.On("GetPlan", mock.Anything, 7).Return(walkInPlan, nil).Once()
		f.repo.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx models.PaymentTransaction) bool {
			return tx.Method == models.PaymentMethodWalkIn &&
				tx.Status == models.PaymentStatusSuccess &&
				tx.PaidAt != nil
		})).Return(22, nil).Once()
		f.repo.On("ActivateSubscription", mock.Anything, 11, mock.Anything, mock.Anything).
			Return(true, nil).Once()
		f.repo.On("GetSubscriptionByID", mock.Anything, 11).Return(activeSub, nil).Once()
		f.notifier.On("SubscriptionActivated", mock.Anything).Return(nil).Once()

		_, err := f.svc.Verify(context.Background(), ref, models.RoleAdmin)
		require.NoError(t, err)
		f.gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		f.repo.AssertExpectations(t)
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, "CF_missing").
			Return(nil, storage.ErrNotFound).Once()

		_, err := f.svc.Verify(context.Background(), "CF_missing", models.RoleUser)
		assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	})
}

func TestProcessWebhook(t *testing.T) {
	const ref = "CF_1735689600123_9f3cba01"
	pendingSub := &models.UserSubscription{
		ID: 11, UserUID: "uid-1", PlanID: 1,
		Status: models.SubscriptionStatusPending, PaymentReference: ref,
	}
	activeSub := &models.UserSubscription{
		ID: 11, Status: models.SubscriptionStatusActive, PaymentReference: ref,
	}

	t.Run("charge.success activates", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub, nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()
		f.repo.On("UpdateTransaction", mock.Anything, ref, models.PaymentStatusSuccess,
			mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.On("ActivateSubscription", mock.Anything, 11, mock.Anything, mock.Anything).
			Return(true, nil).Once()
		f.repo.On("GetSubscriptionByID", mock.Anything, 11).Return(activeSub, nil).Once()
		f.notifier.On("SubscriptionActivated", activeSub).Return(nil).Once()

		err := f.svc.ProcessWebhook(context.Background(), &paystack.WebhookEvent{
			Event: "charge.success",
			Data:  paystack.VerifyData{Status: "success", Reference: ref, Amount: 5000},
		})
		require.NoError(t, err)
		f.repo.AssertExpectations(t)
	})

	t.Run("redelivery on active subscription is a no-op", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(activeSub, nil).Once()

		err := f.svc.ProcessWebhook(context.Background(), &paystack.WebhookEvent{
			Event: "charge.success",
			Data:  paystack.VerifyData{Reference: ref, Amount: 5000},
		})
		require.NoError(t, err)
		f.repo.AssertNotCalled(t, "ActivateSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other events are acknowledged and ignored", func(t *testing.T) {
		f := newFixture()

		err := f.svc.ProcessWebhook(context.Background(), &paystack.WebhookEvent{Event: "transfer.success"})
		require.NoError(t, err)
		f.repo.AssertNotCalled(t, "GetSubscriptionByReference", mock.Anything, mock.Anything)
	})

	t.Run("amount mismatch rejects event", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetSubscriptionByReference", mock.Anything, ref).Return(pendingSub, nil).Once()
		f.repo.On("GetPlan", mock.Anything, 1).Return(onlinePlan, nil).Once()

		err := f.svc.ProcessWebhook(context.Background(), &paystack.WebhookEvent{
			Event: "charge.success",
			Data:  paystack.VerifyData{Reference: ref, Amount: 100},
		})
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})
}

func TestListPlans(t *testing.T) {
	plans := []*models.SubscriptionPlan{onlinePlan, walkInPlan}

	t.Run("cache miss loads and stores", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", "plans:all", mock.Anything).Return(false, nil).Once()
		f.repo.On("ListPlans", mock.Anything).Return(plans, nil).Once()
		f.cache.On("Set", "plans:all", plans, time.Hour).Return(nil).Once()

		got, err := f.svc.ListPlans(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
		f.cache.AssertExpectations(t)
	})

	t.Run("cache error falls back to storage", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", "plans:all", mock.Anything).Return(false, errors.New("redis down")).Once()
		f.repo.On("ListPlans", mock.Anything).Return(plans, nil).Once()
		f.cache.On("Set", "plans:all", plans, time.Hour).Return(nil).Once()

		got, err := f.svc.ListPlans(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown user type", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.ListPlansByUserType(context.Background(), "alien")
		assert.ErrorIs(t, err, ErrUnknownUserType)
	})

	t.Run("filter hits storage once", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", "plans:student", mock.Anything).Return(false, nil).Once()
		f.repo.On("ListPlansByUserType", mock.Anything, models.UserTypeStudent).
			Return([]*models.SubscriptionPlan{onlinePlan}, nil).Once()
		f.cache.On("Set", "plans:student", mock.Anything, time.Hour).Return(nil).Once()

		got, err := f.svc.ListPlansByUserType(context.Background(), models.UserTypeStudent)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		f.repo.AssertExpectations(t)
	})
}
