// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldErrors maps struct fields to the sentinel reported when they fail.
var fieldErrors = map[string]error{
	"DataDir":     ErrEmptyDataDir,
	"Network":     ErrInvalidNetwork,
	"LogLevel":    ErrInvalidLogLevel,
	"LogFormat":   ErrInvalidLogFormat,
	"MetricsAddr": ErrInvalidMetricsAddr,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
// Log level and format are matched case-insensitively.
func ValidateConfig(cfg Config) error {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("config: validate: %w", err)
	}
	first := verrs[0]
	if sentinel, ok := fieldErrors[first.StructField()]; ok {
		return fmt.Errorf("%w: %q", sentinel, fmt.Sprint(first.Value()))
	}
	return fmt.Errorf("config: %s failed %q", first.StructField(), first.Tag())
}
