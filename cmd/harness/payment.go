package main

import (
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/internal/domains/harness/payload"
	"rentdesk/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Send a payment provider event",
	Example: `  # Successful checkout for an existing payment
  harness payment --event succeeded --booking-id 6f1c... --payment-id 93ab... --amount 250

  # Expired session
  harness payment --event expired --payment-id 93ab...`,
	Args: cobra.NoArgs,
	RunE: runPayment,
}

func init() {
	paymentCmd.Flags().String("event", payload.EventSucceeded, "succeeded, failed or expired")
	paymentCmd.Flags().String("session-id", "", "Checkout session ID (generated when empty)")
	paymentCmd.Flags().String("transaction-id", "", "Provider transaction ID")
	paymentCmd.Flags().String("booking-id", "", "Booking ID")
	paymentCmd.Flags().String("payment-id", "", "Payment ID")
	paymentCmd.Flags().String("amount", "0", "Amount")
	paymentCmd.Flags().String("currency", "", "ISO currency code")
	paymentCmd.Flags().StringArray(flagSet, nil, "Override a payload field, path=value")

	rootCmd.AddCommand(paymentCmd)
}

func runPayment(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	req := dto.PaymentEventRequest{}
	req.Event, _ = flags.GetString("event")
	req.SessionID, _ = flags.GetString("session-id")
	req.TransactionID, _ = flags.GetString("transaction-id")
	req.BookingID, _ = flags.GetString("booking-id")
	req.PaymentID, _ = flags.GetString("payment-id")
	req.Currency, _ = flags.GetString("currency")

	amount, _ := flags.GetString("amount")

	var err error

	if req.Amount, err = decimal.NewFromString(amount); err != nil {
		return err
	}

	if req.Overrides, err = overrides(cmd); err != nil {
		return err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := harnessService().PaymentEvent(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printResponse(cmd, res)
}
