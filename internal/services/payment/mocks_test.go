package payment

import (
	"context"

	"payproc/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) Post(ctx context.Context, path string, body any) error {
	args := m.Called(ctx, path, body)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(ctx context.Context, userID string, amount float64, currency string) error {
	args := m.Called(ctx, userID, amount, currency)
	return args.Error(0)
}

type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) Track(ctx context.Context, event models.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
