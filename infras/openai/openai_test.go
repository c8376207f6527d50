package openai_test

import (
	"context"
	"rentdesk/config"
	"rentdesk/infras/openai"
	"rentdesk/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		amount   string
		currency string
		wantErr  bool
	}{
		{name: "plain string", content: `{"amount":"120.50","currency":"chf"}`, amount: "120.5", currency: "CHF"},
		{name: "number", content: `{"amount":80,"currency":"EUR"}`, amount: "80", currency: "EUR"},
		{name: "symbols and separators", content: `{"amount":"CHF 1'250.00","currency":"CHF"}`, amount: "1250", currency: "CHF"},
		{name: "comma thousands", content: `{"amount":"1,250.75"}`, amount: "1250.75"},
		{name: "empty amount", content: `{"amount":""}`, wantErr: true},
		{name: "zero amount", content: `{"amount":"0"}`, wantErr: true},
		{name: "not json", content: `the fine is 40 CHF`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := openai.ParseExtraction(tt.content)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.Amount.String())
			assert.Equal(t, tt.currency, got.Currency)
		})
	}
}

func TestDisabledWithoutKey(t *testing.T) {
	extractor := openai.New(&config.Config{}, mocks.NewOtel())

	_, err := extractor.ExtractFineAmount(context.Background(), []byte("img"), "image/png")
	assert.ErrorIs(t, err, openai.ErrDisabled)
}
