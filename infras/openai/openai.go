// Package openai reads the payable amount off a scanned traffic fine.
package openai

//go:generate go run go.uber.org/mock/mockgen -source=./openai.go -destination=./mocks/openai_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/shared/base64"
	"rentdesk/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
)

var (
	ErrDisabled        = errors.New("amount extraction is not configured")
	ErrUnsupportedType = errors.New("only image documents can be read")
	ErrNoAmount        = errors.New("no amount found in document")
)

const systemPrompt = `You read traffic fines and parking tickets. Reply with a JSON object
{"amount": "<payable amount as a plain decimal number>", "currency": "<ISO code>"}.
Use an empty string for amount when the document shows no payable amount.`

type Extraction struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type Extractor interface {
	ExtractFineAmount(ctx context.Context, document []byte, contentType string) (Extraction, error)
}

type extractorImpl struct {
	client *goopenai.Client
	model  string
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Extractor {
	if cfg.External.OpenAI.APIKey == "" {
		return disabled{}
	}

	return &extractorImpl{
		client: goopenai.NewClient(cfg.External.OpenAI.APIKey),
		model:  cfg.External.OpenAI.Model,
		otel:   ot,
	}
}

func (e *extractorImpl) ExtractFineAmount(ctx context.Context, document []byte, contentType string) (res Extraction, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ExtractFineAmount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !strings.HasPrefix(contentType, "image/") {
		return res, ErrUnsupportedType
	}

	dataURL := base64.Encode(contentType, document)

	resp, err := e.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: goopenai.ChatMessageRoleUser,
				MultiContent: []goopenai.ChatMessagePart{
					{Type: goopenai.ChatMessagePartTypeText, Text: "Extract the payable amount."},
					{Type: goopenai.ChatMessagePartTypeImageURL, ImageURL: &goopenai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("fine amount extraction request failed")

		return res, fmt.Errorf("failed to extract fine amount: %w", err)
	}

	if len(resp.Choices) == 0 {
		return res, ErrNoAmount
	}

	return ParseExtraction(resp.Choices[0].Message.Content)
}

// ParseExtraction decodes the model reply, tolerating currency symbols and
// thousands separators in the amount.
func ParseExtraction(content string) (Extraction, error) {
	var raw struct {
		Amount   any    `json:"amount"`
		Currency string `json:"currency"`
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return Extraction{}, fmt.Errorf("unexpected extraction reply: %w", err)
	}

	var text string

	switch v := raw.Amount.(type) {
	case string:
		text = v
	case float64:
		text = decimal.NewFromFloat(v).String()
	}

	text = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}

		return -1
	}, text)

	if text == "" {
		return Extraction{}, ErrNoAmount
	}

	amount, err := decimal.NewFromString(text)
	if err != nil || !amount.IsPositive() {
		return Extraction{}, ErrNoAmount
	}

	return Extraction{Amount: amount.Round(2), Currency: strings.ToUpper(raw.Currency)}, nil
}

type disabled struct{}

func (disabled) ExtractFineAmount(_ context.Context, _ []byte, _ string) (Extraction, error) {
	return Extraction{}, ErrDisabled
}
