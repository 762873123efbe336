// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks a loaded configuration against the struct tags declared
// on [Config] and [Group].
func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
