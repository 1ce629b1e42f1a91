package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateIfAbsent(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) UserList(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) InstructorList(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) RoleForEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) SetRole(ctx context.Context, id, role string) (*models.UpdateAck, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateAck), args.Error(1)
}

// MockClassStore is a mock implementation of ClassStore.
type MockClassStore struct {
	mock.Mock
}

func (m *MockClassStore) ClassList(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *MockClassStore) ApprovedList(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *MockClassStore) PopularList(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *MockClassStore) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *MockClassStore) Create(ctx context.Context, class *models.Class) (*models.InsertAck, error) {
	args := m.Called(ctx, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertAck), args.Error(1)
}

func (m *MockClassStore) SetStatus(ctx context.Context, id, status string) (*models.UpdateAck, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateAck), args.Error(1)
}

func (m *MockClassStore) SetFeedback(ctx context.Context, id, feedback string) (*models.UpdateAck, error) {
	args := m.Called(ctx, id, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateAck), args.Error(1)
}

func (m *MockClassStore) UpdateDetails(ctx context.Context, id string, update models.ClassUpdate) (*models.UpdateAck, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateAck), args.Error(1)
}

// MockCartStore is a mock implementation of CartStore.
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) CartList(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartStore) ListForUser(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartStore) Add(ctx context.Context, item *models.CartItem) (*models.InsertAck, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertAck), args.Error(1)
}

func (m *MockCartStore) Remove(ctx context.Context, id string) (*models.DeleteAck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteAck), args.Error(1)
}

// MockPaymentStore is a mock implementation of PaymentStore.
type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) PaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) Record(ctx context.Context, payment *models.Payment) (*models.PaymentAck, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentAck), args.Error(1)
}

func (m *MockPaymentStore) EnrolledClasses(ctx context.Context, email string) ([]models.Class, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

// MockPaymentGateway is a mock implementation of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}
