package handler

import "github.com/airport-tracker/internal/pkg/errors"

func errInvalidQuery(err error) error {
	return errors.ErrInvalidInput.WithDetails(map[string]interface{}{"query": err.Error()})
}

func errInvalidBody(err error) error {
	return errors.ErrInvalidInput.WithDetails(map[string]interface{}{"body": err.Error()})
}
