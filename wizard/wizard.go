// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/certificate-wizard/models"
)

var ErrWrongStep = errors.New("action not allowed at this step")

// Submitter forwards a validated request and returns a user-facing message
type Submitter interface {
	Submit(ctx context.Context, req models.CertificateRequest) (string, error)
}

// Outcome is the result of the last submission attempt on a session
type Outcome struct {
	Success bool
	Message string
}

// Session is one user's wizard state. Values are not safe for concurrent
// use; stores hand out copies.
type Session struct {
	ID           string
	Step         models.Step
	SelectedType models.CertificateType // empty until chosen
	Outcome      *Outcome
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Form holds the raw step 2 input
type Form struct {
	Name       string
	Email      string
	Date       models.Date // zero means today
	BloodGroup string
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      models.StepSelectType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy
func (s *Session) Clone() *Session {
	c := *s
	if s.Outcome != nil {
		o := *s.Outcome
		c.Outcome = &o
	}
	return &c
}

// SelectType picks a certificate by display label and moves to step 2
func (s *Session) SelectType(label string, now time.Time) error {
	if s.Step != models.StepSelectType {
		return fmt.Errorf("%w: select requires %s, session is on %s", ErrWrongStep, models.StepSelectType, s.Step)
	}
	typ, err := models.ParseCertificateLabel(label)
	if err != nil {
		return err
	}
	s.SelectedType = typ
	s.Step = models.StepFillDetails
	s.Outcome = nil
	s.UpdatedAt = now
	return nil
}

// GoBack returns to the selection screen and forgets the chosen type
func (s *Session) GoBack(now time.Time) error {
	if s.Step != models.StepFillDetails {
		return fmt.Errorf("%w: back requires %s, session is on %s", ErrWrongStep, models.StepFillDetails, s.Step)
	}
	s.clear(now)
	return nil
}

// Reset starts over from any step
func (s *Session) Reset(now time.Time) {
	s.clear(now)
}

func (s *Session) clear(now time.Time) {
	s.Step = models.StepSelectType
	s.SelectedType = ""
	s.Outcome = nil
	s.UpdatedAt = now
}

// Submit validates form and hands the request to sub. Validation failures
// return *ValidationError and leave the session untouched. Submitter
// failures are recorded in Outcome and returned; the session stays on
// step 2 either way.
func (s *Session) Submit(ctx context.Context, form Form, sub Submitter, now time.Time) (string, error) {
	if s.Step != models.StepFillDetails {
		return "", fmt.Errorf("%w: submit requires %s, session is on %s", ErrWrongStep, models.StepFillDetails, s.Step)
	}

	req, err := BuildRequest(s.SelectedType, form, now)
	if err != nil {
		return "", err
	}

	msg, err := sub.Submit(ctx, req)
	s.UpdatedAt = now
	if err != nil {
		s.Outcome = &Outcome{Success: false, Message: err.Error()}
		return "", err
	}
	s.Outcome = &Outcome{Success: true, Message: msg}
	return msg, nil
}
