package discount

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Apply(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   float64
	}{
		{name: "no code", amount: 100, code: "", want: 100},
		{name: "percentage code", amount: 100, code: "SUMMER20", want: 80},
		{name: "flat code", amount: 50, code: "WELCOME10", want: 40},
		{name: "unknown code", amount: 75, code: "BOGUS", want: 75},
		{name: "codes are case sensitive", amount: 100, code: "summer20", want: 100},
	}

	s := NewService(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Apply(tt.amount, tt.code), 1e-9)
		})
	}
}

func TestService_Apply_LogsUnknownCode(t *testing.T) {
	var buf bytes.Buffer
	s := NewService(nil, slog.New(slog.NewTextHandler(&buf, nil)))

	s.Apply(10, "NOPE")
	assert.Contains(t, buf.String(), "unknown discount code")
	assert.Contains(t, buf.String(), "code=NOPE")

	buf.Reset()
	s.Apply(10, "SUMMER20")
	assert.Empty(t, buf.String())
}

func TestService_Apply_SubUnitFlatIsReadAsPercentage(t *testing.T) {
	s := NewService(Codes{"HALF": 0.5}, nil)
	assert.InDelta(t, 50.0, s.Apply(100, "HALF"), 1e-9)
}

func TestNewService_CopiesTable(t *testing.T) {
	codes := Codes{"X": 5}
	s := NewService(codes, nil)
	codes["X"] = 50

	assert.InDelta(t, 15.0, s.Apply(20, "X"), 1e-9)
}
