// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/certificate-wizard/models"
)

var testNow = time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

// fakeSubmitter records calls and returns a canned result
type fakeSubmitter struct {
	calls    int
	requests []models.CertificateRequest
	msg      string
	err      error
}

func (f *fakeSubmitter) Submit(ctx context.Context, req models.CertificateRequest) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	return f.msg, f.err
}

func sessionOn(t *testing.T, label string) *Session {
	t.Helper()
	s := New("session-1", testNow)
	if err := s.SelectType(label, testNow); err != nil {
		t.Fatalf("Failed to select %q: %v", label, err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s := New("abc", testNow)

	if s.Step != models.StepSelectType {
		t.Errorf("Expected initial step select_type, got %s", s.Step)
	}
	if s.SelectedType != "" {
		t.Errorf("Expected no selected type, got '%s'", s.SelectedType)
	}
	if s.Outcome != nil {
		t.Error("Expected no outcome on a new session")
	}
	if !s.CreatedAt.Equal(testNow) || !s.UpdatedAt.Equal(testNow) {
		t.Error("Expected timestamps to be set to now")
	}
}

func TestSelectTypeAllLabels(t *testing.T) {
	testCases := []struct {
		label string
		code  models.CertificateType
	}{
		{"Python for Beginners", models.CertPython},
		{"Web Development for Beginners", models.CertWebDev},
		{"Tree Plantation", models.CertTreePlantation},
		{"Debate Competition", models.CertDebate},
		{"Yoga Camp", models.CertYoga},
		{"Blood Donation Camp", models.CertBloodDonation},
		{"Arduino for Beginners", models.CertArduino},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			s := New("abc", testNow)
			later := testNow.Add(time.Minute)

			if err := s.SelectType(tc.label, later); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if s.Step != models.StepFillDetails {
				t.Errorf("Expected step fill_details, got %s", s.Step)
			}
			if s.SelectedType != tc.code {
				t.Errorf("Expected type '%s', got '%s'", tc.code, s.SelectedType)
			}
			if s.SelectedType.Label() != tc.label {
				t.Errorf("Expected label '%s', got '%s'", tc.label, s.SelectedType.Label())
			}
			if !s.UpdatedAt.Equal(later) {
				t.Error("Expected UpdatedAt to advance")
			}
		})
	}
}

func TestSelectTypeUnknownLabel(t *testing.T) {
	s := New("abc", testNow)

	for _, label := range []string{"", "Yoga", "yoga camp", "Knitting Circle"} {
		err := s.SelectType(label, testNow)
		if !errors.Is(err, models.ErrUnknownCertificateType) {
			t.Errorf("Expected ErrUnknownCertificateType for %q, got %v", label, err)
		}
	}
	if s.Step != models.StepSelectType {
		t.Errorf("Expected step to stay select_type, got %s", s.Step)
	}
}

func TestSelectTypeWrongStep(t *testing.T) {
	s := sessionOn(t, "Yoga Camp")

	err := s.SelectType("Tree Plantation", testNow)
	if !errors.Is(err, ErrWrongStep) {
		t.Fatalf("Expected ErrWrongStep, got %v", err)
	}
	if s.SelectedType != models.CertYoga {
		t.Errorf("Expected selection to stay Yoga, got '%s'", s.SelectedType)
	}
}

func TestGoBack(t *testing.T) {
	for _, typ := range models.CertificateTypes() {
		t.Run(string(typ), func(t *testing.T) {
			s := sessionOn(t, typ.Label())
			s.Outcome = &Outcome{Success: false, Message: "Error: 500 - boom"}

			if err := s.GoBack(testNow); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if s.Step != models.StepSelectType {
				t.Errorf("Expected step select_type, got %s", s.Step)
			}
			if s.SelectedType != "" {
				t.Errorf("Expected selected type to be cleared, got '%s'", s.SelectedType)
			}
			if s.Outcome != nil {
				t.Error("Expected outcome to be cleared")
			}
		})
	}
}

func TestGoBackWrongStep(t *testing.T) {
	s := New("abc", testNow)

	if err := s.GoBack(testNow); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Expected ErrWrongStep, got %v", err)
	}
}

func TestReset(t *testing.T) {
	s := sessionOn(t, "Debate Competition")
	s.Outcome = &Outcome{Success: true, Message: "done"}

	s.Reset(testNow)

	if s.Step != models.StepSelectType || s.SelectedType != "" || s.Outcome != nil {
		t.Errorf("Expected a fresh session after reset, got %+v", s)
	}

	// Reset is also allowed on the first step
	s.Reset(testNow)
	if s.Step != models.StepSelectType {
		t.Errorf("Expected step select_type, got %s", s.Step)
	}
}

func TestSubmitSuccess(t *testing.T) {
	s := sessionOn(t, "Python for Beginners")
	sub := &fakeSubmitter{msg: "Certificate request submitted successfully!"}

	date, _ := models.ParseDate("2025-03-01")
	msg, err := s.Submit(context.Background(), Form{
		Name:  "  Ravi Kumar ",
		Email: "ravi@example.com",
		Date:  date,
	}, sub, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if msg != "Certificate request submitted successfully!" {
		t.Errorf("Expected success message, got '%s'", msg)
	}
	if sub.calls != 1 {
		t.Fatalf("Expected 1 submit call, got %d", sub.calls)
	}

	req := sub.requests[0]
	if req.Type != models.CertPython {
		t.Errorf("Expected type Python, got '%s'", req.Type)
	}
	if req.Name != "Ravi Kumar" {
		t.Errorf("Expected trimmed name 'Ravi Kumar', got '%s'", req.Name)
	}
	if req.Date.String() != "2025-03-01" {
		t.Errorf("Expected date 2025-03-01, got %s", req.Date)
	}
	if req.BloodGroup != "" {
		t.Errorf("Expected empty blood group, got '%s'", req.BloodGroup)
	}

	if s.Step != models.StepFillDetails {
		t.Errorf("Expected to stay on fill_details after success, got %s", s.Step)
	}
	if s.Outcome == nil || !s.Outcome.Success || s.Outcome.Message != msg {
		t.Errorf("Expected success outcome, got %+v", s.Outcome)
	}
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	s := sessionOn(t, "Yoga Camp")
	sub := &fakeSubmitter{err: errors.New("Error: 500 - Internal Error")}

	_, err := s.Submit(context.Background(), Form{Name: "A", Email: "a@b.c"}, sub, testNow)
	if err == nil {
		t.Fatal("Expected submitter error to be returned")
	}

	if s.Step != models.StepFillDetails {
		t.Errorf("Expected to stay on fill_details, got %s", s.Step)
	}
	if s.SelectedType != models.CertYoga {
		t.Errorf("Expected selection to be kept, got '%s'", s.SelectedType)
	}
	if s.Outcome == nil || s.Outcome.Success {
		t.Fatalf("Expected failure outcome, got %+v", s.Outcome)
	}
	if s.Outcome.Message != "Error: 500 - Internal Error" {
		t.Errorf("Expected message verbatim, got '%s'", s.Outcome.Message)
	}
}

func TestSubmitValidationNeverCalls(t *testing.T) {
	testCases := []struct {
		name    string
		label   string
		form    Form
		field   string
		message string
	}{
		{"empty name", "Yoga Camp", Form{Email: "a@b.c"}, "name", MsgRequiredFields},
		{"empty email", "Yoga Camp", Form{Name: "A"}, "email", MsgRequiredFields},
		{"whitespace name", "Tree Plantation", Form{Name: "   ", Email: "a@b.c"}, "name", MsgRequiredFields},
		{"both empty", "Arduino for Beginners", Form{}, "name", MsgRequiredFields},
		{"blood group missing", "Blood Donation Camp", Form{Name: "A", Email: "a@b.c"}, "blood_group", MsgBloodGroupMissing},
		{"blood group invalid", "Blood Donation Camp", Form{Name: "A", Email: "a@b.c", BloodGroup: "C+"}, "blood_group", MsgBloodGroupInvalid},
		{"name checked before blood group", "Blood Donation Camp", Form{Email: "a@b.c"}, "name", MsgRequiredFields},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionOn(t, tc.label)
			sub := &fakeSubmitter{msg: "ok"}

			_, err := s.Submit(context.Background(), tc.form, sub, testNow)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T (%v)", err, err)
			}
			if verr.Field != tc.field {
				t.Errorf("Expected field '%s', got '%s'", tc.field, verr.Field)
			}
			if verr.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, verr.Message)
			}
			if sub.calls != 0 {
				t.Errorf("Expected no submit call, got %d", sub.calls)
			}
			if s.Outcome != nil {
				t.Error("Expected validation failure not to set an outcome")
			}
		})
	}
}

func TestSubmitWrongStep(t *testing.T) {
	s := New("abc", testNow)
	sub := &fakeSubmitter{}

	_, err := s.Submit(context.Background(), Form{Name: "A", Email: "a@b.c"}, sub, testNow)
	if !errors.Is(err, ErrWrongStep) {
		t.Fatalf("Expected ErrWrongStep, got %v", err)
	}
	if sub.calls != 0 {
		t.Errorf("Expected no submit call, got %d", sub.calls)
	}
}

func TestSubmitBloodDonation(t *testing.T) {
	for _, group := range models.BloodGroups() {
		t.Run(string(group), func(t *testing.T) {
			s := sessionOn(t, "Blood Donation Camp")
			sub := &fakeSubmitter{msg: "ok"}

			_, err := s.Submit(context.Background(), Form{
				Name:       "A",
				Email:      "a@b.c",
				BloodGroup: string(group),
			}, sub, testNow)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if sub.requests[0].BloodGroup != group {
				t.Errorf("Expected blood group '%s', got '%s'", group, sub.requests[0].BloodGroup)
			}
		})
	}
}

func TestSubmitNonBloodTypeDropsBloodGroup(t *testing.T) {
	for _, typ := range models.CertificateTypes() {
		if typ.RequiresBloodGroup() {
			continue
		}
		t.Run(string(typ), func(t *testing.T) {
			s := sessionOn(t, typ.Label())
			sub := &fakeSubmitter{msg: "ok"}

			_, err := s.Submit(context.Background(), Form{
				Name:       "A",
				Email:      "a@b.c",
				BloodGroup: "O+",
			}, sub, testNow)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if sub.requests[0].BloodGroup != "" {
				t.Errorf("Expected empty blood group for %s, got '%s'", typ, sub.requests[0].BloodGroup)
			}
		})
	}
}

func TestSubmitDefaultsDateToToday(t *testing.T) {
	s := sessionOn(t, "Yoga Camp")
	sub := &fakeSubmitter{msg: "ok"}

	if _, err := s.Submit(context.Background(), Form{Name: "A", Email: "a@b.c"}, sub, testNow); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := sub.requests[0].Date.String(); got != "2025-03-07" {
		t.Errorf("Expected default date 2025-03-07, got %s", got)
	}
}

func TestSubmitAgainAfterSuccess(t *testing.T) {
	s := sessionOn(t, "Yoga Camp")
	sub := &fakeSubmitter{msg: "ok"}
	form := Form{Name: "A", Email: "a@b.c"}

	if _, err := s.Submit(context.Background(), form, sub, testNow); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if _, err := s.Submit(context.Background(), form, sub, testNow); err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}
	if sub.calls != 2 {
		t.Errorf("Expected 2 submit calls, got %d", sub.calls)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := sessionOn(t, "Yoga Camp")
	s.Outcome = &Outcome{Success: true, Message: "ok"}

	c := s.Clone()
	c.Outcome.Message = "changed"
	c.Step = models.StepSelectType

	if s.Outcome.Message != "ok" {
		t.Error("Expected clone outcome to be a separate copy")
	}
	if s.Step != models.StepFillDetails {
		t.Error("Expected clone step to be independent")
	}
}

func TestBuildRequestUnknownType(t *testing.T) {
	_, err := BuildRequest("", Form{Name: "A", Email: "a@b.c"}, testNow)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if verr.Message != MsgCertificateType {
		t.Errorf("Expected message '%s', got '%s'", MsgCertificateType, verr.Message)
	}
}
