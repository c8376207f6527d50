package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	"rentdesk/infras/functions"
	fnMocks "rentdesk/infras/functions/mocks"
	"rentdesk/infras/openai"
	openaiMocks "rentdesk/infras/openai/mocks"
	"rentdesk/infras/otel/mocks"
	s3Mocks "rentdesk/infras/s3/mocks"
	fineMocks "rentdesk/internal/domains/fine/mocks"
	"rentdesk/internal/domains/fine/model"
	"rentdesk/internal/domains/fine/model/dto"
	"rentdesk/internal/domains/fine/service"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	invMocks "rentdesk/shared/invalidator/mocks"
)

const documentURL = "https://files.example/fines/b-1/scan.png"

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

type fixture struct {
	repo        *fineMocks.MockFine
	storage     *s3Mocks.MockStorage
	extractor   *openaiMocks.MockExtractor
	cache       *cacheMocks.MockRedisCache
	invalidator *invMocks.MockInvalidator
	functions   *fnMocks.MockClient
	svc         service.Fine
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        fineMocks.NewMockFine(ctrl),
		storage:     s3Mocks.NewMockStorage(ctrl),
		extractor:   openaiMocks.NewMockExtractor(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		invalidator: invMocks.NewMockInvalidator(ctrl),
		functions:   fnMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.storage, f.extractor, cfg, f.cache, mocks.NewOtel(), f.invalidator, f.functions)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-1")
}

func uploadRequest(amount *decimal.Decimal) dto.UploadFineRequest {
	content := []byte("fake png bytes")

	return dto.UploadFineRequest{
		BookingID: "b-1",
		Document: &multipart.FileHeader{
			Filename: "scan.png",
			Size:     int64(len(content)),
			Header:   textproto.MIMEHeader{constant.RequestHeaderContentType: []string{"image/png"}},
		},
		DocumentFile: memoryFile{bytes.NewReader(content)},
		Amount:       amount,
		Description:  "Speeding, A1 Bern",
	}
}

func (f *fixture) expectAccepted() {
	f.functions.EXPECT().Call(gomock.Any(), functions.ValidateUpload, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload any, out any) error {
			check, ok := payload.(dto.UploadCheck)
			if ok {
				out.(*dto.UploadVerdict).Valid = check.Size > 0 //nolint:forcetypeassert
			}

			return nil
		})
	f.storage.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, _ []byte) (string, error) {
			if !strings.HasPrefix(key, "fines/b-1/") || !strings.HasSuffix(key, "-scan.png") {
				return "", errors.New("unexpected key " + key)
			}

			return documentURL, nil
		})
}

func TestFineService_Upload(t *testing.T) {
	t.Run("platform extraction", func(t *testing.T) {
		f := newFixture(t)
		f.expectAccepted()

		f.functions.EXPECT().Call(gomock.Any(), functions.ExtractFineAmount, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ any, out any) error {
				amount := decimal.RequireFromString("120")
				out.(*dto.AmountResult).Amount = &amount //nolint:forcetypeassert

				return nil
			})

		var stored model.Fine

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fine model.Fine) error {
			stored = fine

			return nil
		})
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		res, err := f.svc.Upload(userContext(), uploadRequest(nil))

		require.NoError(t, err)
		assert.True(t, res.AmountExtracted)
		assert.Empty(t, res.Warnings)
		assert.Equal(t, "120.00", stored.Amount.StringFixed(2))
		assert.Equal(t, documentURL, *stored.DocumentURL)
		assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
		assert.Equal(t, "Speeding, A1 Bern", *stored.Description)
	})

	t.Run("falls back to the image reader", func(t *testing.T) {
		f := newFixture(t)
		f.expectAccepted()

		f.functions.EXPECT().Call(gomock.Any(), functions.ExtractFineAmount, gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		f.extractor.EXPECT().ExtractFineAmount(gomock.Any(), []byte("fake png bytes"), "image/png").
			Return(openai.Extraction{Amount: decimal.RequireFromString("80.5"), Currency: "CHF"}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		res, err := f.svc.Upload(userContext(), uploadRequest(nil))

		require.NoError(t, err)
		assert.True(t, res.AmountExtracted)
		assert.Equal(t, "80.50", res.Amount.StringFixed(2))
	})

	t.Run("extraction failure is a warning", func(t *testing.T) {
		f := newFixture(t)
		f.expectAccepted()

		f.functions.EXPECT().Call(gomock.Any(), functions.ExtractFineAmount, gomock.Any(), gomock.Any()).Return(nil)
		f.extractor.EXPECT().ExtractFineAmount(gomock.Any(), gomock.Any(), gomock.Any()).Return(openai.Extraction{}, openai.ErrDisabled)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		res, err := f.svc.Upload(userContext(), uploadRequest(nil))

		require.NoError(t, err)
		assert.False(t, res.AmountExtracted)
		assert.True(t, res.Amount.IsZero())
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "fine-amount-extraction", res.Warnings[0].Hook)
	})

	t.Run("given amount skips extraction", func(t *testing.T) {
		f := newFixture(t)
		f.expectAccepted()

		amount := decimal.RequireFromString("45")

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		res, err := f.svc.Upload(userContext(), uploadRequest(&amount))

		require.NoError(t, err)
		assert.False(t, res.AmountExtracted)
		assert.Equal(t, "45.00", res.Amount.StringFixed(2))
	})

	t.Run("rejected document is not stored", func(t *testing.T) {
		f := newFixture(t)
		f.functions.EXPECT().Call(gomock.Any(), functions.ValidateUpload, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ any, out any) error {
				out.(*dto.UploadVerdict).Reason = "malware signature" //nolint:forcetypeassert

				return nil
			})

		_, err := f.svc.Upload(userContext(), uploadRequest(nil))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("insert failure removes the stored document", func(t *testing.T) {
		f := newFixture(t)
		f.expectAccepted()

		amount := decimal.RequireFromString("45")

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Upload(userContext(), uploadRequest(&amount))

		assert.Error(t, err)
	})
}

func TestFineService_List(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "fine:list:b-1", gomock.Any()).Return(errors.New("miss"))
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Fine{{ID: "f-1", BookingID: "b-1"}}, nil)

	res, err := f.svc.List(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Len(t, res.Fines, 1)
}
