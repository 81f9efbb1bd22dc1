// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/certificate-wizard/models"
)

const (
	MsgRequiredFields    = "Please fill in all required fields."
	MsgBloodGroupMissing = "Please select your blood group."
	MsgBloodGroupInvalid = "Please select a valid blood group."
	MsgCertificateType   = "Please select a certificate type."
)

// ValidationError is a local input problem; nothing was sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Dates are structs; validate them by their string form so `required`
	// rejects the zero date.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(models.Date)
		if !ok || d.IsZero() {
			return ""
		}
		return d.String()
	}, models.Date{})
	return v
}

// BuildRequest turns raw form input into a validated webhook payload.
// Name and email are trimmed and a zero date becomes now's date. The blood
// group is only read for blood donation certificates.
func BuildRequest(typ models.CertificateType, form Form, now time.Time) (models.CertificateRequest, error) {
	if !typ.Valid() {
		return models.CertificateRequest{}, &ValidationError{Field: "type", Message: MsgCertificateType}
	}

	req := models.CertificateRequest{
		Type:  typ,
		Name:  strings.TrimSpace(form.Name),
		Email: strings.TrimSpace(form.Email),
		Date:  form.Date,
	}
	if req.Date.IsZero() {
		req.Date = models.DateOf(now)
	}

	var badBloodGroup bool
	if bg := strings.TrimSpace(form.BloodGroup); typ.RequiresBloodGroup() && bg != "" {
		group, err := models.ParseBloodGroup(bg)
		if err != nil {
			badBloodGroup = true
		} else {
			req.BloodGroup = group
		}
	}

	if err := validate.Struct(req); err != nil {
		verr := toValidationError(err)
		if badBloodGroup && verr.Field == "blood_group" {
			verr.Message = MsgBloodGroupInvalid
		}
		return models.CertificateRequest{}, verr
	}
	return req, nil
}

// toValidationError reports missing name/email before a missing blood group
func toValidationError(err error) *ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	var bloodGroupMissing bool
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Name", "Email", "Date":
			return &ValidationError{Field: strings.ToLower(fe.Field()), Message: MsgRequiredFields}
		case "BloodGroup":
			bloodGroupMissing = true
		case "Type":
			return &ValidationError{Field: "type", Message: MsgCertificateType}
		}
	}
	if bloodGroupMissing {
		return &ValidationError{Field: "blood_group", Message: MsgBloodGroupMissing}
	}
	return &ValidationError{Field: fieldErrs[0].Field(), Message: MsgRequiredFields}
}
