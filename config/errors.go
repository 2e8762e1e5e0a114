package config

import "github.com/pkg/errors"

func errInvalid(field string) error {
	return errors.Errorf("config: %s must be > 0", field)
}
