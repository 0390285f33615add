package stripeclient

import (
	"context"
	"errors"
	"testing"

	"payproc/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/form"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

type MockIntents struct {
	mock.Mock
}

func (m *MockIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockIntents) Search(params *stripe.PaymentIntentSearchParams) *paymentintent.SearchIter {
	args := m.Called(params)
	return args.Get(0).(*paymentintent.SearchIter)
}

// searchResult builds a one-page search iterator over found, or one that
// fails with err.
func searchResult(err error, found ...*stripe.PaymentIntent) *paymentintent.SearchIter {
	params := &stripe.PaymentIntentSearchParams{}
	return &paymentintent.SearchIter{
		SearchIter: stripe.GetSearchIter(params, func(*stripe.Params, *form.Values) ([]interface{}, stripe.SearchContainer, error) {
			page := &stripe.PaymentIntentSearchResult{Data: found}
			values := make([]interface{}, len(found))
			for i, pi := range found {
				values[i] = pi
			}
			return values, page, err
		}),
	}
}

type MockRefunds struct {
	mock.Mock
}

func (m *MockRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Refund), args.Error(1)
}

func TestClient_Post_CreditCard(t *testing.T) {
	intents := new(MockIntents)
	refunds := new(MockRefunds)
	c := newWithBackends(intents, refunds, nil)

	code := "SUMMER20"
	tx := &models.Transaction{
		ID:            "id-1",
		UserID:        "u1",
		FinalAmount:   96,
		Currency:      "EUR",
		PaymentMethod: models.PaymentMethodCreditCard,
		Metadata:      models.Metadata{"cardNumber": "4242424242424242", "expiry": "12/25"},
		DiscountCode:  &code,
	}

	intents.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
		return *p.Amount == 9600 &&
			*p.Currency == "usd" &&
			*p.IdempotencyKey == "id-1" &&
			p.Metadata["user_id"] == "u1" &&
			p.Metadata["original_currency"] == "EUR" &&
			p.Metadata["discount_code"] == "SUMMER20" &&
			p.Metadata["cardNumber"] == "" &&
			p.PaymentMethod == nil &&
			p.Confirm == nil
	})).Return(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil).Once()

	require.NoError(t, c.Post(context.Background(), "/payments/credit_card", tx))
	intents.AssertExpectations(t)
}

func TestClient_Post_CreditCardConfirmed(t *testing.T) {
	intents := new(MockIntents)
	c := newWithBackends(intents, new(MockRefunds), nil)

	intents.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
		return *p.PaymentMethod == "pm_card_visa" &&
			*p.Confirm &&
			*p.Amount == 1999
	})).Return(&stripe.PaymentIntent{ID: "pi_2", Status: stripe.PaymentIntentStatusSucceeded}, nil).Once()

	err := c.Post(context.Background(), "/payments/credit_card", &models.Transaction{
		ID:            "id-2",
		UserID:        "u1",
		FinalAmount:   19.99,
		Currency:      "USD",
		PaymentMethod: models.PaymentMethodCreditCard,
		Metadata:      models.Metadata{MetaPaymentMethod: "pm_card_visa"},
	})
	require.NoError(t, err)
	intents.AssertExpectations(t)
}

func TestClient_Post_Refund(t *testing.T) {
	intents := new(MockIntents)
	refunds := new(MockRefunds)
	c := newWithBackends(intents, refunds, nil)

	refunds.On("New", mock.MatchedBy(func(p *stripe.RefundParams) bool {
		return *p.PaymentIntent == "pi_1" &&
			*p.Amount == 9500 &&
			*p.Reason == string(stripe.RefundReasonDuplicate)
	})).Return(&stripe.Refund{ID: "re_1"}, nil).Once()

	err := c.Post(context.Background(), "/payments/refund", &models.Refund{
		ID:            "r-1",
		TransactionID: "tx1",
		Reason:        "duplicate",
		Amount:        100,
		NetAmount:     95,
		Currency:      "USD",
		Metadata:      models.Metadata{MetaPaymentIntent: "pi_1"},
	})
	require.NoError(t, err)
	refunds.AssertExpectations(t)
}

func TestClient_Post_RefundLooksUpIntent(t *testing.T) {
	intents := new(MockIntents)
	refunds := new(MockRefunds)
	c := newWithBackends(intents, refunds, nil)

	intents.On("Search", mock.MatchedBy(func(p *stripe.PaymentIntentSearchParams) bool {
		return p.Query == "metadata['transaction_id']:'tx1'" && p.Single
	})).Return(searchResult(nil, &stripe.PaymentIntent{ID: "pi_found"})).Once()
	refunds.On("New", mock.MatchedBy(func(p *stripe.RefundParams) bool {
		return *p.PaymentIntent == "pi_found" && *p.Amount == 9500
	})).Return(&stripe.Refund{ID: "re_2"}, nil).Once()

	err := c.Post(context.Background(), "/payments/refund", &models.Refund{
		ID:            "r-2",
		TransactionID: "tx1",
		Amount:        100,
		NetAmount:     95,
		Currency:      "USD",
		Metadata:      models.Metadata{},
	})
	require.NoError(t, err)
	intents.AssertExpectations(t)
	refunds.AssertExpectations(t)
}

func TestClient_Post_RefundIntentLookupFails(t *testing.T) {
	tests := []struct {
		name    string
		result  *paymentintent.SearchIter
		wantErr error
		wantMsg string
	}{
		{name: "no matching intent", result: searchResult(nil), wantErr: ErrIntentNotFound},
		{name: "search error", result: searchResult(errors.New("rate limited")), wantMsg: "rate limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := new(MockIntents)
			refunds := new(MockRefunds)
			c := newWithBackends(intents, refunds, nil)
			intents.On("Search", mock.Anything).Return(tt.result).Once()

			err := c.Post(context.Background(), "/payments/refund", &models.Refund{ID: "r-3", TransactionID: "tx-missing"})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
			refunds.AssertNotCalled(t, "New", mock.Anything)
		})
	}
}

func TestClient_Post_Errors(t *testing.T) {
	intents := new(MockIntents)
	refunds := new(MockRefunds)
	c := newWithBackends(intents, refunds, nil)
	ctx := context.Background()

	assert.ErrorIs(t, c.Post(ctx, "/payments/paypal", &models.Transaction{}), ErrUnsupportedRoute)
	assert.ErrorIs(t, c.Post(ctx, "/payments/credit_card", &models.Refund{}), ErrUnexpectedBody)
	assert.ErrorIs(t, c.Post(ctx, "/payments/refund", &models.Refund{}), ErrMissingIntent)

	intents.On("New", mock.Anything).Return(nil, errors.New("card_declined")).Once()
	err := c.Post(ctx, "/payments/credit_card", &models.Transaction{ID: "x", Currency: "USD"})
	assert.ErrorContains(t, err, "card_declined")

	refunds.AssertNotCalled(t, "New", mock.Anything)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(9600), ToMinorUnits(96.0000000001, "EUR"))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99, "usd"))
	assert.Equal(t, int64(500), ToMinorUnits(500, "JPY"))
}
