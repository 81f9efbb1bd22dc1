package models

import (
	"fmt"
)

// Step is the wizard screen a session is on
type Step int

const (
	StepSelectType  Step = 1
	StepFillDetails Step = 2
)

func (s Step) String() string {
	switch s {
	case StepSelectType:
		return "select_type"
	case StepFillDetails:
		return "fill_details"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) Valid() bool {
	return s == StepSelectType || s == StepFillDetails
}

func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	switch string(text) {
	case "select_type":
		*s = StepSelectType
	case "fill_details":
		*s = StepFillDetails
	default:
		return fmt.Errorf("invalid step %q", string(text))
	}
	return nil
}

// Outbound webhook payload

// CertificateRequest is POSTed to the webhook. BloodGroup is empty unless
// Type is CertBloodDonation.
type CertificateRequest struct {
	Type       CertificateType `json:"type" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Email      string          `json:"email" validate:"required"`
	Date       Date            `json:"date" validate:"required"`
	BloodGroup BloodGroup      `json:"blood_group" validate:"required_if=Type BloodDonation"`
}

// Request types

type SelectTypeRequest struct {
	CertificateType string `json:"certificate_type"`
}

type SubmitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	BloodGroup string `json:"blood_group,omitempty"`
}

// Response types

type CertificateOption struct {
	Label              string          `json:"label"`
	Code               CertificateType `json:"code"`
	RequiresBloodGroup bool            `json:"requires_blood_group"`
}

type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"` // text, email, date, select
	Required bool     `json:"required"`
	Help     string   `json:"help,omitempty"`
	Default  string   `json:"default,omitempty"`
	Options  []string `json:"options,omitempty"`
}

type FormView struct {
	Fields []FormField `json:"fields"`
}

type OutcomeView struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// SessionView describes the screen a session should show
type SessionView struct {
	SessionID           string              `json:"session_id"`
	Step                Step                `json:"step"`
	SelectedCertificate string              `json:"selected_certificate,omitempty"`
	CertificateCode     CertificateType     `json:"certificate_code,omitempty"`
	Options             []CertificateOption `json:"options,omitempty"`
	Form                *FormView           `json:"form,omitempty"`
	Outcome             *OutcomeView        `json:"outcome,omitempty"`
	Busy                bool                `json:"busy"`
}

type CertificateTypesResponse struct {
	CertificateTypes []CertificateOption `json:"certificate_types"`
}

type BloodGroupsResponse struct {
	BloodGroups []BloodGroup `json:"blood_groups"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
