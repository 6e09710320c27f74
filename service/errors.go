package service

import (
	"errors"
	"staffeval/app_error"

	"gorm.io/gorm"
)

// notFound turns gorm's missing record error into a NotFound naming the entity.
func notFound(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.Newf(app_error.KindNotFound, "%s with ID %v not found", entity, id)
	}
	return err
}
