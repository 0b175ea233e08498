// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured view holds raw source values only; the rules live on
// [ClientConfig], so this is a no-op.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate runs the struct tag rules of every group and maps the first
// failing group to its sentinel error.
func (cfg *ClientConfig) validate() error {
	v := structValidator()

	groups := []struct {
		value    any
		sentinel error
	}{
		{cfg.Storage.DB, ErrInvalidStorageConfigs},
		{cfg.Adapter, ErrInvalidAdapterConfigs},
		{cfg.Upload, ErrInvalidUploadConfigs},
		{cfg.Session, ErrInvalidSessionConfigs},
		{cfg.Workers, ErrInvalidWorkerConfigs},
	}

	for _, g := range groups {
		if err := v.Struct(g.value); err != nil {
			return fmt.Errorf("%w: %w", g.sentinel, err)
		}
	}

	return nil
}
