package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/avpratap/riqueza-backend/models"
)

// Hand-rolled fakes; each method delegates to an optional function field so a
// test overrides only what it exercises.

type mockCartRepo struct {
	findByUser   func(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	findByID     func(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)
	upsert       func(ctx context.Context, item *models.CartItem) error
	setQuantity  func(ctx context.Context, userID, itemID uuid.UUID, quantity int, totalPrice float64) error
	delete       func(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
	deleteByUser func(ctx context.Context, userID uuid.UUID) (int64, error)
	summary      func(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error)
}

func (m *mockCartRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	return m.findByUser(ctx, userID)
}

func (m *mockCartRepo) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	return m.findByID(ctx, userID, itemID)
}

func (m *mockCartRepo) Upsert(ctx context.Context, item *models.CartItem) error {
	return m.upsert(ctx, item)
}

func (m *mockCartRepo) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int, totalPrice float64) error {
	return m.setQuantity(ctx, userID, itemID, quantity, totalPrice)
}

func (m *mockCartRepo) Delete(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	return m.delete(ctx, userID, itemID)
}

func (m *mockCartRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.deleteByUser(ctx, userID)
}

func (m *mockCartRepo) Summary(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error) {
	return m.summary(ctx, userID)
}

type mockUserRepo struct {
	findByID      func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByPhone   func(ctx context.Context, phone string) (*models.User, error)
	existsByPhone func(ctx context.Context, phone string) (bool, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
	findGuestByID func(ctx context.Context, id uuid.UUID) (*models.User, error)
	deleteGuest   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findByID(ctx, id)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return m.findByPhone(ctx, phone)
}

func (m *mockUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return m.existsByPhone(ctx, phone)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.create(ctx, user)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.update(ctx, user)
}

func (m *mockUserRepo) FindGuestByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findGuestByID(ctx, id)
}

func (m *mockUserRepo) DeleteGuest(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.deleteGuest(ctx, id)
}

type mockOTPRepo struct {
	created       []*models.OTP
	findActive    func(ctx context.Context, verificationID, phoneNumber string) (*models.OTP, error)
	markedUsed    []string
	deleteExpired func(ctx context.Context) (int64, error)
}

func (m *mockOTPRepo) Create(_ context.Context, otp *models.OTP) error {
	m.created = append(m.created, otp)
	return nil
}

func (m *mockOTPRepo) FindActive(ctx context.Context, verificationID, phoneNumber string) (*models.OTP, error) {
	return m.findActive(ctx, verificationID, phoneNumber)
}

func (m *mockOTPRepo) MarkUsed(_ context.Context, verificationID string) error {
	m.markedUsed = append(m.markedUsed, verificationID)
	return nil
}

func (m *mockOTPRepo) Delete(context.Context, string) (int64, error) { return 1, nil }

func (m *mockOTPRepo) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpired != nil {
		return m.deleteExpired(ctx)
	}
	return 0, nil
}

type mockSender struct {
	sent []string
	err  error
}

func (m *mockSender) SendSMS(_ context.Context, to, msg string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+": "+msg)
	return nil
}

type mockCache struct {
	invalidated []string
}

func (m *mockCache) Get(context.Context, string) (*models.CartView, bool) { return nil, false }
func (m *mockCache) Set(context.Context, string, *models.CartView)        {}
func (m *mockCache) Invalidate(_ context.Context, sessionID string) {
	m.invalidated = append(m.invalidated, sessionID)
}
