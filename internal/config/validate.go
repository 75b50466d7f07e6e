package config

import (
	"cityguide/internal/validation"
)

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return nil
}
