// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Company holds the letterhead printed on exported quotations.
type Company struct {
	Name    string `env:"PLYQUOTE_COMPANY_NAME" envDefault:"BHAKTI SALES"`
	Tagline string `env:"PLYQUOTE_COMPANY_TAGLINE" envDefault:"PLYWOOD | DECORATIVE DOORS | INTERIOR GALLERY"`
	Address string `env:"PLYQUOTE_COMPANY_ADDRESS" envDefault:"Opp. Gita Mandir, Pratap Nagar Main Road, Vadodara - 4"`
	Phone   string `env:"PLYQUOTE_COMPANY_PHONE" envDefault:"+91 94283 02008 / +91 93139 77948"`
	Website string `env:"PLYQUOTE_COMPANY_WEBSITE" envDefault:"www.bhaktisales.com"`
}

type Config struct {
	Company Company

	// FirstQuotationNo is the number given to the first quotation of an
	// empty store.
	FirstQuotationNo int `env:"PLYQUOTE_FIRST_QUOTATION_NO" envDefault:"1001"`

	// AllocationAttempts bounds how many times a create is retried after a
	// quotation number collision. 1 disables retrying.
	AllocationAttempts uint `env:"PLYQUOTE_ALLOCATION_ATTEMPTS" envDefault:"3"`

	WhatsAppCountryCode string `env:"PLYQUOTE_WHATSAPP_COUNTRY_CODE" envDefault:"91"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FirstQuotationNo < 1 {
		return Config{}, fmt.Errorf("PLYQUOTE_FIRST_QUOTATION_NO must be positive, got %d", cfg.FirstQuotationNo)
	}
	if cfg.AllocationAttempts == 0 {
		cfg.AllocationAttempts = 1
	}
	return cfg, nil
}
