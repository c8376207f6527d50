// Package service assembles the booking detail view: every collection tied to a
// booking, loaded side by side, plus the figures derived from them.
package service

import (
	"context"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/otel"
	accessModel "rentdesk/internal/domains/accesstoken/model"
	accessDto "rentdesk/internal/domains/accesstoken/model/dto"
	accessRepo "rentdesk/internal/domains/accesstoken/repository"
	bookingModel "rentdesk/internal/domains/booking/model"
	bookingDto "rentdesk/internal/domains/booking/model/dto"
	bookingRepo "rentdesk/internal/domains/booking/repository"
	"rentdesk/internal/domains/bookingdetail/derive"
	"rentdesk/internal/domains/bookingdetail/model/dto"
	depositModel "rentdesk/internal/domains/deposit/model"
	depositRepo "rentdesk/internal/domains/deposit/repository"
	"rentdesk/internal/domains/document"
	expenseModel "rentdesk/internal/domains/expense/model"
	expenseRepo "rentdesk/internal/domains/expense/repository"
	fineModel "rentdesk/internal/domains/fine/model"
	fineDto "rentdesk/internal/domains/fine/model/dto"
	fineRepo "rentdesk/internal/domains/fine/repository"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	invoiceDto "rentdesk/internal/domains/invoice/model/dto"
	invoiceRepo "rentdesk/internal/domains/invoice/repository"
	paymentModel "rentdesk/internal/domains/payment/model"
	paymentDto "rentdesk/internal/domains/payment/model/dto"
	paymentRepo "rentdesk/internal/domains/payment/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/duration"
	"rentdesk/shared/failure"
	"rentdesk/shared/invalidator"
	"rentdesk/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Query names double as cache key segments and as keys of DetailResponse.Errors.
const (
	QueryBooking          = "booking"
	QuerySummary          = "financial-summary"
	QueryPayments         = "payments"
	QueryFines            = "fines"
	QuerySupplierInvoices = "supplier-invoices"
	QueryClientInvoices   = "client-invoices"
	QueryExpenses         = "expenses"
	QueryDeposit          = "deposit-authorization"
	QueryAccessToken      = "access-token"
)

type Detail interface {
	Get(ctx context.Context, bookingID string) (dto.DetailResponse, error)
	// Document renders one of the booking copies and returns its file name and PDF bytes.
	Document(ctx context.Context, bookingID, variant string) (string, []byte, error)
}

type Repositories struct {
	Booking         bookingRepo.Booking
	Summary         bookingRepo.Summary
	Payment         paymentRepo.Payment
	Fine            fineRepo.Fine
	SupplierInvoice invoiceRepo.SupplierInvoice
	ClientInvoice   invoiceRepo.ClientInvoice
	Expense         expenseRepo.Expense
	Deposit         depositRepo.Authorization
	AccessToken     accessRepo.AccessToken
}

type serviceImpl struct {
	repos    Repositories
	settings *document.Settings
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repos Repositories, settings *document.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Detail {
	return &serviceImpl{
		repos:    repos,
		settings: settings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// collections holds one slot per query. Each fetch goroutine writes only its own slot.
type collections struct {
	booking          *bookingModel.Booking
	summary          *bookingModel.FinancialSummary
	payments         []paymentModel.Payment
	fines            []fineModel.Fine
	supplierInvoices []invoiceModel.SupplierInvoice
	clientInvoices   []invoiceModel.ClientInvoice
	expenses         []expenseModel.Expense
	deposit          *depositModel.Authorization
	accessToken      *accessModel.AccessToken
	errs             map[string]error
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	c := s.load(ctx, bookingID)

	if c.errs[QueryBooking] == nil && c.booking == nil {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res = response(c)

	if c.booking != nil {
		res.Figures = s.figures(c)
	}

	return res, nil
}

func (s *serviceImpl) Document(ctx context.Context, bookingID, variant string) (fileName string, pdf []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Document")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	required, ok := documentQueries[variant]
	if !ok {
		return "", nil, failure.BadRequestFromString("unknown document variant: " + variant) // nolint:wrapcheck
	}

	c := s.load(ctx, bookingID)

	for _, query := range append([]string{QueryBooking}, required...) {
		if c.errs[query] != nil {
			return "", nil, fmt.Errorf("failed to load %s: %w", query, c.errs[query])
		}
	}

	if c.booking == nil {
		return "", nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	var doc document.Document

	switch variant {
	case document.VariantAdmin:
		paid := derive.ActualAmountPaid(*c.booking, c.payments)
		net := derive.NetCommission(*c.booking, c.clientInvoices, c.supplierInvoices, c.deposit)
		margin := derive.DepositMargin(c.deposit, c.supplierInvoices)

		doc = document.AdminCopy(*c.booking, &document.Figures{
			ActualAmountPaid: &paid,
			NetCommission:    &net,
			DepositMargin:    &margin,
		}, s.settings)
	case document.VariantSupplier:
		doc = document.SupplierCopy(*c.booking, s.settings)
	default:
		doc = document.ClientCopy(*c.booking, c.payments, s.settings)
	}

	pdf, err = document.PDF(doc)
	if err != nil {
		log.Error().Err(err).Str("variant", variant).Msg("failed to render booking document")

		return "", nil, fmt.Errorf("failed to render booking document: %w", err)
	}

	return doc.FileName, pdf, nil
}

// documentQueries lists, per variant, the collections besides the booking a copy prints.
var documentQueries = map[string][]string{
	document.VariantAdmin:    {QueryPayments, QueryClientInvoices, QuerySupplierInvoices, QueryDeposit},
	document.VariantSupplier: {},
	document.VariantClient:   {QueryPayments},
}

func (s *serviceImpl) load(ctx context.Context, bookingID string) *collections {
	type result struct {
		query string
		err   error
	}

	c := &collections{errs: map[string]error{}}
	tasks := []struct {
		query string
		run   func(ctx context.Context) error
	}{
		{QueryBooking, func(ctx context.Context) (err error) {
			c.booking, err = cached(ctx, s, QueryBooking, bookingID, func(ctx context.Context) (*bookingModel.Booking, error) {
				b, err := s.repos.Booking.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))

				return present(b, b.ID), err
			})

			return err
		}},
		{QuerySummary, func(ctx context.Context) (err error) {
			c.summary, err = cached(ctx, s, QuerySummary, bookingID, func(ctx context.Context) (*bookingModel.FinancialSummary, error) {
				sum, err := s.repos.Summary.Get(ctx, shared.FilterByBooking(bookingID, bookingModel.FieldSummaryBookingID, bookingModel.SummaryTableName))

				return present(sum, sum.BookingID), err
			})

			return err
		}},
		{QueryPayments, func(ctx context.Context) (err error) {
			c.payments, err = cached(ctx, s, QueryPayments, bookingID, func(ctx context.Context) ([]paymentModel.Payment, error) {
				return s.repos.Payment.GetAll(ctx, newestFirst(constant.FieldCreatedAt),
					shared.FilterByBooking(bookingID, paymentModel.FieldBookingID, paymentModel.TableName))
			})

			return err
		}},
		{QueryFines, func(ctx context.Context) (err error) {
			c.fines, err = cached(ctx, s, QueryFines, bookingID, func(ctx context.Context) ([]fineModel.Fine, error) {
				return s.repos.Fine.GetAll(ctx, newestFirst(constant.FieldCreatedAt),
					shared.FilterActiveByBooking(bookingID, fineModel.FieldBookingID, fineModel.TableName))
			})

			return err
		}},
		{QuerySupplierInvoices, func(ctx context.Context) (err error) {
			c.supplierInvoices, err = cached(ctx, s, QuerySupplierInvoices, bookingID, func(ctx context.Context) ([]invoiceModel.SupplierInvoice, error) {
				return s.repos.SupplierInvoice.GetAll(ctx, newestFirst(constant.FieldCreatedAt),
					shared.FilterActiveByBooking(bookingID, invoiceModel.FieldBookingID, invoiceModel.SupplierTableName))
			})

			return err
		}},
		{QueryClientInvoices, func(ctx context.Context) (err error) {
			c.clientInvoices, err = cached(ctx, s, QueryClientInvoices, bookingID, func(ctx context.Context) ([]invoiceModel.ClientInvoice, error) {
				return s.repos.ClientInvoice.GetAll(ctx, newestFirst(constant.FieldCreatedAt),
					shared.FilterActiveByBooking(bookingID, invoiceModel.FieldBookingID, invoiceModel.ClientTableName))
			})

			return err
		}},
		{QueryExpenses, func(ctx context.Context) (err error) {
			c.expenses, err = cached(ctx, s, QueryExpenses, bookingID, func(ctx context.Context) ([]expenseModel.Expense, error) {
				return s.repos.Expense.GetAll(ctx, newestFirst(expenseModel.FieldIncurred),
					shared.FilterByBooking(bookingID, expenseModel.FieldBookingID, expenseModel.TableName))
			})

			return err
		}},
		{QueryDeposit, func(ctx context.Context) (err error) {
			c.deposit, err = cached(ctx, s, QueryDeposit, bookingID, func(ctx context.Context) (*depositModel.Authorization, error) {
				auth, err := s.repos.Deposit.Get(ctx, shared.FilterByBooking(bookingID, depositModel.FieldBookingID, depositModel.TableName))

				return present(auth, auth.ID), err
			})

			return err
		}},
		{QueryAccessToken, func(ctx context.Context) (err error) {
			c.accessToken, err = cached(ctx, s, QueryAccessToken, bookingID, func(ctx context.Context) (*accessModel.AccessToken, error) {
				params := newestFirst(accessModel.FieldCreatedAt)
				params.Page, params.Limit = 1, 1

				tokens, err := s.repos.AccessToken.GetAll(ctx, params,
					shared.FilterByBooking(bookingID, accessModel.FieldBookingID, accessModel.TableName))
				if err != nil || len(tokens) == 0 {
					return nil, err
				}

				return &tokens[0], nil
			})

			return err
		}},
	}

	results := make([]result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)

	for i, task := range tasks {
		g.Go(func() error {
			results[i] = result{query: task.query, err: task.run(gctx)}

			return nil
		})
	}

	_ = g.Wait()

	for _, r := range results {
		if r.err != nil {
			log.Error().Err(r.err).Str("query", r.query).Str("booking_id", bookingID).Msg("booking detail query failed")

			c.errs[r.query] = r.err
		}
	}

	return c
}

// cached is cache-aside for a single detail query. A failed load is never cached.
func cached[T any](ctx context.Context, s *serviceImpl, query, bookingID string, load func(context.Context) (T, error)) (T, error) {
	var value T

	key := invalidator.DetailKey(query, bookingID)

	if err := s.cache.Get(ctx, key, &value); err == nil {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save booking detail query to cache")
		}
	}()

	return value, nil
}

// present maps the zero record the repository returns for "no rows" to nil.
func present[T any](v T, id string) *T {
	if id == constant.Empty {
		return nil
	}

	return &v
}

func newestFirst(field string) gDto.QueryParams {
	return gDto.QueryParams{SortBy: field, SortDir: gDto.SortDirDesc}
}

func (s *serviceImpl) figures(c *collections) *dto.Figures {
	b := *c.booking
	paid := derive.ActualAmountPaid(b, c.payments)

	return &dto.Figures{
		ActualAmountPaid: paid,
		StoredAmountPaid: b.AmountPaid,
		BalanceDue:       derive.BalanceDue(b.AmountTotal, paid),
		PaymentProgress:  derive.PaymentProgress(paid, b.AmountTotal),
		BaseCommission:   derive.BaseCommission(b),
		DepositMargin:    derive.DepositMargin(c.deposit, c.supplierInvoices),
		NetCommission:    derive.NetCommission(b, c.clientInvoices, c.supplierInvoices, c.deposit),
		Duration:         duration.Describe(b.DeliveryAt, b.CollectionAt, s.cfg.Rental.ToleranceHours),
	}
}

func response(c *collections) dto.DetailResponse {
	var res dto.DetailResponse

	if c.booking != nil {
		res.Booking = &bookingDto.BookingResponse{}
		res.Booking.FromModel(*c.booking)
	}

	res.Summary = c.summary
	res.Deposit = c.deposit

	res.Payments = make([]paymentDto.PaymentResponse, len(c.payments))
	for i, p := range c.payments {
		res.Payments[i].FromModel(p)
	}

	res.Fines = make([]fineDto.FineResponse, len(c.fines))
	for i, f := range c.fines {
		res.Fines[i].FromModel(f)
	}

	res.SupplierInvoices = make([]invoiceDto.SupplierInvoiceResponse, len(c.supplierInvoices))
	for i, inv := range c.supplierInvoices {
		res.SupplierInvoices[i].FromModel(inv)
	}

	res.ClientInvoices = make([]invoiceDto.ClientInvoiceResponse, len(c.clientInvoices))
	for i, inv := range c.clientInvoices {
		res.ClientInvoices[i].FromModel(inv)
	}

	res.Expenses = c.expenses
	if res.Expenses == nil {
		res.Expenses = []expenseModel.Expense{}
	}

	if c.accessToken != nil {
		res.AccessToken = &accessDto.AccessTokenResponse{}
		res.AccessToken.FromModel(*c.accessToken, timezone.Now())
	}

	if len(c.errs) > 0 {
		res.Errors = make(map[string]string, len(c.errs))
		for query, err := range c.errs {
			res.Errors[query] = err.Error()
		}
	}

	return res
}
