package service

import (
	"errors"

	"Station_Hub/internal/pkg/errs"

	"gorm.io/gorm"
)

// asNotFound 把 gorm 的未找到统一翻译成业务 NotFound
func asNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(msg)
	}
	return err
}
