// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Certificate Types

CertificateType is a closed set of seven variants. The value is the short
code sent to the webhook; Label returns the text shown on the selection
screen:

	Python for Beginners          → Python
	Web Development for Beginners → WebDev
	Tree Plantation               → TreePlantation
	Debate Competition            → Debate
	Yoga Camp                     → Yoga
	Blood Donation Camp           → BloodDonation
	Arduino for Beginners         → Arduino

Only CertBloodDonation requires a blood group.

# Blood Groups

BloodGroup is a closed set: A+, A-, B+, B-, AB+, AB-, O+, O-.

# Dates

Date is a calendar date serialized as "YYYY-MM-DD":

	d, _ := models.ParseDate("2025-03-07")
	json.Marshal(d) // "2025-03-07"

# Wizard Steps

Step values and their JSON form:

	StepSelectType  = 1 → "select_type"
	StepFillDetails = 2 → "fill_details"

# Webhook Payload

CertificateRequest is the body POSTed to the webhook:

	{"type":"Yoga","name":"...","email":"...","date":"2025-03-07","blood_group":""}

# Request Types

  - SelectTypeRequest: certificate_type (display label)
  - SubmitRequest: name, email, date, blood_group

# Response Types

  - SessionView: the screen for a session (options on step 1, form on step 2)
  - CertificateTypesResponse, BloodGroupsResponse: catalogs
  - ErrorResponse: error, message
*/
package models
