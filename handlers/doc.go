// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the certificate wizard.

# Handler Types

  - CatalogHandler: the fixed certificate and blood group lists
  - SessionHandler: one wizard per session, kept in a store.Store

SessionHandler takes the store and a wizard.Submitter:

	client := submission.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, nil)
	sessionHandler := handlers.NewSessionHandler(st, client)

# Wizard Flow

Sessions move between two screens: select_type ↔ fill_details

	POST /sessions              → Create (select_type)
	POST /sessions/{id}/select  → SelectType (fill_details)
	POST /sessions/{id}/back    → GoBack (select_type)
	POST /sessions/{id}/submit  → Submit (stays on fill_details)
	POST /sessions/{id}/reset   → Reset (select_type)
	GET  /sessions/{id}         → Get
	DELETE /sessions/{id}       → Delete

Every response that shows a screen is a models.SessionView. After a
submission it carries the outcome message and a follow-up hint.

# Status Codes

	400 invalid JSON or unknown certificate type
	404 unknown or expired session
	409 action not valid on this screen, or session busy
	422 missing or invalid form fields
	502 webhook rejected the request or could not be reached

# Busy Sessions

Mutating requests hold a per-session flag for their whole duration. A
second mutation on the same session gets 409 while the first is running,
and GET reports busy: true. Sessions never block each other.

Names and emails are never logged.
*/
package handlers
