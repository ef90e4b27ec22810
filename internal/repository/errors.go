package repository

import (
	"errors"

	"gorm.io/gorm"
)

// notFoundAs maps gorm.ErrRecordNotFound to the given domain error and passes other errors through
func notFoundAs(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// duplicateAs maps a unique constraint violation to the given domain error
func duplicateAs(err, duplicate error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicate
	}
	return err
}
