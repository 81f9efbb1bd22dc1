// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - WebhookURL: Where certificate requests are POSTed (default: DefaultWebhookURL)
  - WebhookTimeout: Deadline for one webhook call (default: 30s)
  - SessionStore: memory, sqlite or postgres (default: memory)
  - DatabaseURL: Connection string, required for sqlite and postgres
  - SessionTTL: Idle time before a session expires (default: 30m)

# Sources

Environment variables are read first with github.com/caarlos0/env/v11,
then CLI flags override them:

	PORT             → -p
	WEBHOOK_URL      → -webhook
	WEBHOOK_TIMEOUT  → -webhook-timeout
	SESSION_STORE    → -store
	DATABASE_URL     → -d
	SESSION_TTL      → -session-ttl

main loads a .env file into the environment before calling ParseFlags.

# Validation

ParseFlags returns an error when:

  - the port is outside 1-65535
  - the webhook URL is not an absolute http or https URL
  - a timeout or TTL is not positive
  - the store kind is unknown, or a SQL store has no DATABASE_URL
*/
package cliparse
