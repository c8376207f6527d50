// Package derive computes the financial figures shown for a booking. All inputs
// are plain collections; a collection that failed to load is passed as nil and
// counts as empty.
package derive

import (
	bookingModel "rentdesk/internal/domains/booking/model"
	depositModel "rentdesk/internal/domains/deposit/model"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	paymentModel "rentdesk/internal/domains/payment/model"
	"rentdesk/shared/money"

	"github.com/shopspring/decimal"
)

// SettledTotal sums rental payments that are paid and carry a paid_at stamp.
func SettledTotal(payments []paymentModel.Payment) decimal.Decimal {
	return money.Sum(payments, paymentAmount, paymentModel.Payment.Settled)
}

// ActualAmountPaid recomputes what the client paid toward the rental. Email-imported
// bookings have no live payment list, so their stored amount_paid is used until a
// settled payment shows up.
func ActualAmountPaid(booking bookingModel.Booking, payments []paymentModel.Payment) decimal.Decimal {
	settled := SettledTotal(payments)

	if booking.IsEmailImport() && !hasSettled(payments) {
		return money.Round2(booking.AmountPaid)
	}

	return money.Round2(settled)
}

func BaseCommission(booking bookingModel.Booking) decimal.Decimal {
	return money.Round2(booking.RentalPriceGross.Sub(booking.SupplierPrice))
}

// DepositMargin is what was captured from the deposit minus what the supplier billed against it.
func DepositMargin(auth *depositModel.Authorization, suppliers []invoiceModel.SupplierInvoice) decimal.Decimal {
	captured := decimal.Zero
	if auth != nil {
		captured = auth.CapturedAmount
	}

	extras := money.Sum(suppliers, supplierAmount, invoiceModel.SupplierInvoice.IsDepositExtra)

	return money.Round2(captured.Sub(extras))
}

func NetCommission(
	booking bookingModel.Booking,
	clients []invoiceModel.ClientInvoice,
	suppliers []invoiceModel.SupplierInvoice,
	auth *depositModel.Authorization,
) decimal.Decimal {
	invoiced := money.Sum(clients, clientAmount, nil)
	owed := money.Sum(suppliers, supplierAmount, func(inv invoiceModel.SupplierInvoice) bool {
		return !inv.IsDepositExtra()
	})

	return money.Round2(invoiced.Sub(owed).Sub(booking.ExtraDeduction).Add(DepositMargin(auth, suppliers)))
}

// PaymentProgress is paid over amount_total in percent, clamped to [0,100] with one decimal.
func PaymentProgress(paid, total decimal.Decimal) decimal.Decimal {
	return money.Percent(paid, total)
}

func VATAmount(net, vatRate decimal.Decimal) decimal.Decimal {
	return money.WithVAT(net, vatRate).Sub(money.Round2(net))
}

// BalanceDue never goes below zero.
func BalanceDue(total, paid decimal.Decimal) decimal.Decimal {
	due := total.Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}

	return money.Round2(due)
}

func hasSettled(payments []paymentModel.Payment) bool {
	for _, p := range payments {
		if p.Settled() {
			return true
		}
	}

	return false
}

func paymentAmount(p paymentModel.Payment) decimal.Decimal { return p.Amount }

func clientAmount(inv invoiceModel.ClientInvoice) decimal.Decimal { return inv.TotalAmount }

func supplierAmount(inv invoiceModel.SupplierInvoice) decimal.Decimal { return inv.Amount }
