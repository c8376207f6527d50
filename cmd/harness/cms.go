package main

import (
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var cmsCmd = &cobra.Command{
	Use:   "cms",
	Short: "Send a CMS booking payload",
	Example: `  # Minimal booking, defaults fill the rest
  harness cms --client-name "Anna Meier" --client-email anna@example.com --make Tesla --model "Model 3"

  # Force a reference code and break the delivery date
  harness cms --client-name Anna --client-email anna@example.com --make VW --model Golf \
    --set booking.reference_code=TEST-DUPLICATE --set booking.delivery_at=null`,
	Args: cobra.NoArgs,
	RunE: runCMS,
}

func init() {
	cmsCmd.Flags().String("reference", "", "Reference code (generated when empty)")
	cmsCmd.Flags().String("client-name", "", "Client name")
	cmsCmd.Flags().String("client-email", "", "Client email")
	cmsCmd.Flags().String("client-phone", "", "Client phone")
	cmsCmd.Flags().String("make", "", "Vehicle make")
	cmsCmd.Flags().String("model", "", "Vehicle model")
	cmsCmd.Flags().String("rental-price", "0", "Rental price")
	cmsCmd.Flags().String("deposit", "0", "Security deposit")
	cmsCmd.Flags().String("currency", "", "ISO currency code")
	cmsCmd.Flags().StringArray(flagSet, nil, "Override a payload field, path=value")

	rootCmd.AddCommand(cmsCmd)
}

func runCMS(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	req := dto.CMSBookingRequest{}
	req.ReferenceCode, _ = flags.GetString("reference")
	req.ClientName, _ = flags.GetString("client-name")
	req.ClientEmail, _ = flags.GetString("client-email")
	req.ClientPhone, _ = flags.GetString("client-phone")
	req.VehicleMake, _ = flags.GetString("make")
	req.VehicleModel, _ = flags.GetString("model")
	req.Currency, _ = flags.GetString("currency")

	price, _ := flags.GetString("rental-price")
	deposit, _ := flags.GetString("deposit")

	var err error

	if req.RentalPrice, err = decimal.NewFromString(price); err != nil {
		return err
	}

	if req.SecurityDeposit, err = decimal.NewFromString(deposit); err != nil {
		return err
	}

	if req.Overrides, err = overrides(cmd); err != nil {
		return err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := harnessService().CMSBooking(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printResponse(cmd, res)
}
