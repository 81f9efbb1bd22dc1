// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the certificate wizard server.

The certificate wizard collects certificate requests in two screens: pick
one of seven certificate types, then fill in name, email, issue date and,
for blood donation camps, a blood group. Each validated request is POSTed
as JSON to a webhook (by default a Google Apps Script that records it).

# Starting the Server

Everything has a default, so the server starts with no configuration:

	go run .

Or with flags:

	go run . -p 3318 -webhook "https://example.com/hook" -store sqlite -d wizard.db

A .env file in the working directory is loaded into the environment first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - WEBHOOK_URL (-webhook): Submission endpoint
  - WEBHOOK_TIMEOUT (-webhook-timeout): Per-request deadline (default: 30s)
  - SESSION_STORE (-store): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): Required for sqlite and postgres
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)

# Architecture

  - wizard: The two-step state machine and request validation
  - submission: Webhook client
  - store: Session persistence (memory, SQLite, PostgreSQL)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Certificate types, blood groups, request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
