package document

import (
	"os"
	"rentdesk/config"

	"github.com/rs/zerolog/log"
)

// NewSettings reads branding from configuration. A logo that cannot be read is
// logged and left out so documents still render.
func NewSettings(cfg *config.Config) *Settings {
	s := &Settings{
		CompanyName:    cfg.Branding.CompanyName,
		Address:        cfg.Branding.Address,
		Email:          cfg.Branding.Email,
		Phone:          cfg.Branding.Phone,
		Website:        cfg.Branding.Website,
		ToleranceHours: cfg.Rental.ToleranceHours,
	}

	if cfg.Branding.LogoPath == "" {
		return s
	}

	logo, err := os.ReadFile(cfg.Branding.LogoPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Branding.LogoPath).Msg("failed to read branding logo")

		return s
	}

	s.Logo = logo

	return s
}
