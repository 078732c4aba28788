package service

import (
	"errors"

	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"gorm.io/gorm"
)

// Error classes surfaced to the controllers. Controllers map these to HTTP
// statuses; everything else is treated as an internal error.
var (
	ErrNotFound        = errors.New("not found")
	ErrNotOwned        = errors.New("resource does not belong to the user")
	ErrNotPublished    = errors.New("form is not published")
	ErrValidation      = errors.New("validation failed")
	ErrExternalService = errors.New("external service failure")
)

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ownedForm is the single ownership gate: a principal may mutate a form only
// when they own it. Every form-scoped service operation goes through here.
func ownedForm(repo repository.FormRepository, userID, formID uint) (*model.Form, error) {
	form, err := repo.FindByID(formID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if form.UserID != userID {
		return nil, ErrNotOwned
	}
	return form, nil
}
