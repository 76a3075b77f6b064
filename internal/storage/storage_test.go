package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

func TestStorage_SubscriptionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed storage test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	uid, err := storage.CreateUser(ctx, models.User{
		FullName:   "Ama Mensah",
		Email:      "ama@example.com",
		Phone:      "0241234567",
		SecretHash: "hash",
		UserType:   models.UserTypePublic,
		Role:       models.RoleUser,
		IsActive:   true,
	})
	require.NoError(t, err)

	planID := factory.CreatePlan(t, models.SubscriptionPlan{
		Name: "Public Monthly", UserType: "public", Price: 50.00,
		DurationDays: 30, DurationKind: "online",
	})

	subID, err := storage.CreateSubscription(ctx, models.UserSubscription{
		UserUID:          uid,
		PlanID:           planID,
		Status:           models.SubscriptionStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		PaymentReference: "CF_1_test",
		Amount:           50.00,
		Currency:         "GHS",
	})
	require.NoError(t, err)

	// Активной подписки ещё нет
	_, err = storage.GetActiveSubscriptionByUserUID(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)

	// Условная активация срабатывает ровно один раз
	start := time.Now()
	end := start.AddDate(0, 0, 30)
	ok, err := storage.ActivateSubscription(ctx, subID, start, end)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storage.ActivateSubscription(ctx, subID, start, end)
	require.NoError(t, err)
	assert.False(t, ok, "second activation must lose the conditional update")

	active, err := storage.GetActiveSubscriptionByUserUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, subID, active.ID)
	assert.Equal(t, models.SubscriptionStatusActive, active.Status)
	assert.Equal(t, models.PaymentStatusSuccess, active.PaymentStatus)
	require.NotNil(t, active.EndDate)

	// Отмена активной подписки — no-op: переход только из pending
	require.NoError(t, storage.CancelSubscription(ctx, subID))
	after, err := storage.GetSubscriptionByID(ctx, subID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, after.Status)
}

func TestStorage_TransactionsAndDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed storage test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	expiry := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	factory.CreateDirectoryEntry(t, models.UniversityDirectoryEntry{
		UniversityID: "12345678",
		FullName:     "Kofi Boateng",
		Email:        "kofi@university.edu.gh",
		Role:         models.UserTypeStudent,
		Status:       models.DirectoryStatusGraduated,
		ExpiryDate:   &expiry,
	})

	entry, err := storage.GetDirectoryEntry(ctx, "12345678")
	require.NoError(t, err)
	assert.True(t, entry.IsExpired(time.Now()))

	_, err = storage.GetDirectoryEntry(ctx, "00000000")
	assert.ErrorIs(t, err, ErrNotFound)

	uid, err := storage.CreateUser(ctx, models.User{
		FullName: "Kofi Boateng", Email: "kofi@university.edu.gh",
		SecretHash: "hash", UserType: models.UserTypeStudent,
		Role: models.RoleUser, IsActive: true,
	})
	require.NoError(t, err)

	planID := factory.CreatePlan(t, models.SubscriptionPlan{
		Name: "Student Walk-in", UserType: "student", Price: 10.00,
		DurationDays: 1, DurationKind: "walk-in",
	})
	subID, err := storage.CreateSubscription(ctx, models.UserSubscription{
		UserUID: uid, PlanID: planID,
		Status: models.SubscriptionStatusPending, PaymentStatus: models.PaymentStatusPending,
		PaymentReference: "CF_2_test", Amount: 10.00, Currency: "GHS",
	})
	require.NoError(t, err)

	_, err = storage.CreateTransaction(ctx, models.PaymentTransaction{
		Reference: "CF_2_test", SubscriptionID: subID, UserUID: uid,
		Amount: 10.00, Currency: "GHS",
		Status: models.PaymentStatusPending, Method: models.PaymentMethodOnline,
	})
	require.NoError(t, err)

	paidAt := time.Now()
	err = storage.UpdateTransaction(ctx, "CF_2_test", models.PaymentStatusSuccess,
		[]byte(`{"status":"success"}`), &paidAt)
	require.NoError(t, err)

	tx, err := storage.GetTransactionByReference(ctx, "CF_2_test")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, tx.Status)
	require.NotNil(t, tx.PaidAt)
	assert.JSONEq(t, `{"status":"success"}`, string(tx.GatewayResponse))
}
