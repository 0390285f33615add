package cache

import (
	"context"
	"errors"
	"testing"

	"payproc/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStream struct {
	mock.Mock
}

func (m *MockStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	args := m.Called(ctx, a)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func TestAnalyticsStream_Track(t *testing.T) {
	client := new(MockStream)
	s := NewAnalyticsStream(client, "payments:analytics")

	client.On("XAdd", mock.Anything, mock.MatchedBy(func(a *redis.XAddArgs) bool {
		values, ok := a.Values.(map[string]interface{})
		return ok &&
			a.Stream == "payments:analytics" &&
			a.Approx && a.MaxLen == DefaultStreamMaxLen &&
			values["user_id"] == "u1" &&
			values["amount"] == "96" &&
			values["currency"] == "EUR" &&
			values["method"] == "credit_card"
	})).Return("1-0", nil).Once()

	err := s.Track(context.Background(), models.AnalyticsEvent{
		UserID: "u1", Amount: 96, Currency: "EUR", Method: models.PaymentMethodCreditCard,
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestAnalyticsStream_Track_Error(t *testing.T) {
	client := new(MockStream)
	s := NewAnalyticsStream(client, "payments:analytics")
	client.On("XAdd", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	err := s.Track(context.Background(), models.AnalyticsEvent{UserID: "u1"})
	assert.ErrorContains(t, err, "failed to append analytics event")
	assert.ErrorContains(t, err, "connection refused")
}
