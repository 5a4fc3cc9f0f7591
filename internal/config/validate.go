package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateColumns(); err != nil {
		return err
	}
	if err := c.validateDemographics(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.RequestTimeout <= 0 {
		return errors.New("source.request_timeout must be positive (seconds)")
	}
	source := strings.TrimSpace(c.Source.SheetURL)
	if source == "" {
		return nil
	}
	if strings.Contains(source, "://") {
		parsed, err := url.Parse(source)
		if err != nil {
			return fmt.Errorf("source.sheet_url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("source.sheet_url: unsupported scheme %q", parsed.Scheme)
		}
	}
	return nil
}

func (c *Config) validateColumns() error {
	for name, aliases := range map[string][]string{
		"columns.identity":   c.Columns.Identity,
		"columns.contact":    c.Columns.Contact,
		"columns.location":   c.Columns.Location,
		"columns.gender":     c.Columns.Gender,
		"columns.age":        c.Columns.Age,
		"columns.disability": c.Columns.Disability,
		"columns.timestamp":  c.Columns.Timestamp,
	} {
		if len(aliases) == 0 {
			return fmt.Errorf("%s must list at least one header alias", name)
		}
	}
	return nil
}

func (c *Config) validateDemographics() error {
	if c.Demographics.YouthMinAge < 0 {
		return errors.New("demographics.youth_min_age must be >= 0")
	}
	if c.Demographics.YouthMaxAge < c.Demographics.YouthMinAge {
		return errors.New("demographics.youth_max_age must be >= demographics.youth_min_age")
	}
	return nil
}
