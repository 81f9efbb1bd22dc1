// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"time"

	"github.com/danielhkuo/certificate-wizard/models"
	"github.com/danielhkuo/certificate-wizard/wizard"
)

const (
	HintSuccess = "Your certificate request has been submitted successfully! You will receive your certificate via email shortly."
	HintFailure = "If you continue to experience problems, please contact the administrator."
)

// buildView renders the screen for a session. now supplies the default date.
func buildView(s *wizard.Session, busy bool, now time.Time) models.SessionView {
	view := models.SessionView{
		SessionID: s.ID,
		Step:      s.Step,
		Busy:      busy,
	}

	switch s.Step {
	case models.StepSelectType:
		view.Options = models.CertificateOptions()
	case models.StepFillDetails:
		view.SelectedCertificate = s.SelectedType.Label()
		view.CertificateCode = s.SelectedType
		view.Form = buildForm(s.SelectedType, now)
	}

	if s.Outcome != nil {
		view.Outcome = &models.OutcomeView{
			Success: s.Outcome.Success,
			Message: s.Outcome.Message,
			Hint:    HintFailure,
		}
		if s.Outcome.Success {
			view.Outcome.Hint = HintSuccess
		}
	}

	return view
}

func buildForm(typ models.CertificateType, now time.Time) *models.FormView {
	form := &models.FormView{
		Fields: []models.FormField{
			{
				Name:     "name",
				Label:    "Full Name",
				Kind:     "text",
				Required: true,
				Help:     "This name will appear on your certificate",
			},
			{
				Name:     "email",
				Label:    "Email Address",
				Kind:     "email",
				Required: true,
				Help:     "We'll send your certificate to this email address",
			},
			{
				Name:     "date",
				Label:    "Date of Issue",
				Kind:     "date",
				Required: true,
				Help:     "The date when the certificate should be issued",
				Default:  models.DateOf(now).String(),
			},
		},
	}

	if typ.RequiresBloodGroup() {
		groups := models.BloodGroups()
		options := make([]string, len(groups))
		for i, g := range groups {
			options[i] = string(g)
		}
		form.Fields = append(form.Fields, models.FormField{
			Name:     "blood_group",
			Label:    "Blood Group",
			Kind:     "select",
			Required: true,
			Help:     "Select your blood group",
			Options:  options,
		})
	}

	return form
}
