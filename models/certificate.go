// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCertificateType = errors.New("unknown certificate type")
	ErrUnknownBloodGroup      = errors.New("unknown blood group")
)

// CertificateType is the canonical short code sent to the webhook.
type CertificateType string

const (
	CertPython         CertificateType = "Python"
	CertWebDev         CertificateType = "WebDev"
	CertTreePlantation CertificateType = "TreePlantation"
	CertDebate         CertificateType = "Debate"
	CertYoga           CertificateType = "Yoga"
	CertBloodDonation  CertificateType = "BloodDonation"
	CertArduino        CertificateType = "Arduino"
)

// certificateLabels keeps display order for the selection screen.
var certificateLabels = []struct {
	typ   CertificateType
	label string
}{
	{CertPython, "Python for Beginners"},
	{CertWebDev, "Web Development for Beginners"},
	{CertTreePlantation, "Tree Plantation"},
	{CertDebate, "Debate Competition"},
	{CertYoga, "Yoga Camp"},
	{CertBloodDonation, "Blood Donation Camp"},
	{CertArduino, "Arduino for Beginners"},
}

// CertificateTypes returns all types in display order
func CertificateTypes() []CertificateType {
	types := make([]CertificateType, 0, len(certificateLabels))
	for _, entry := range certificateLabels {
		types = append(types, entry.typ)
	}
	return types
}

// ParseCertificateLabel maps a display label like "Yoga Camp" to its type
func ParseCertificateLabel(label string) (CertificateType, error) {
	for _, entry := range certificateLabels {
		if entry.label == label {
			return entry.typ, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCertificateType, label)
}

// ParseCertificateCode maps a short code like "Yoga" back to its type
func ParseCertificateCode(code string) (CertificateType, error) {
	for _, entry := range certificateLabels {
		if string(entry.typ) == code {
			return entry.typ, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCertificateType, code)
}

// Label returns the display label, or "" for an unknown type
func (c CertificateType) Label() string {
	for _, entry := range certificateLabels {
		if entry.typ == c {
			return entry.label
		}
	}
	return ""
}

func (c CertificateType) Valid() bool {
	return c.Label() != ""
}

// RequiresBloodGroup reports whether step 2 asks for a blood group
func (c CertificateType) RequiresBloodGroup() bool {
	return c == CertBloodDonation
}

type BloodGroup string

const (
	BloodAPos  BloodGroup = "A+"
	BloodANeg  BloodGroup = "A-"
	BloodBPos  BloodGroup = "B+"
	BloodBNeg  BloodGroup = "B-"
	BloodABPos BloodGroup = "AB+"
	BloodABNeg BloodGroup = "AB-"
	BloodOPos  BloodGroup = "O+"
	BloodONeg  BloodGroup = "O-"
)

var bloodGroups = []BloodGroup{
	BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg, BloodOPos, BloodONeg,
}

// BloodGroups returns all blood groups in display order
func BloodGroups() []BloodGroup {
	out := make([]BloodGroup, len(bloodGroups))
	copy(out, bloodGroups)
	return out
}

// ParseBloodGroup accepts one of the eight groups verbatim
func ParseBloodGroup(s string) (BloodGroup, error) {
	for _, g := range bloodGroups {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBloodGroup, s)
}

// CertificateOptions lists the selection screen entries
func CertificateOptions() []CertificateOption {
	options := make([]CertificateOption, 0, len(certificateLabels))
	for _, entry := range certificateLabels {
		options = append(options, CertificateOption{
			Label:              entry.label,
			Code:               entry.typ,
			RequiresBloodGroup: entry.typ.RequiresBloodGroup(),
		})
	}
	return options
}
