// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission forwards certificate requests to the external webhook.

# Usage

	client := submission.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, nil)
	msg, err := client.Submit(ctx, req)

Each call issues exactly one POST with Content-Type: application/json.
Nothing is retried.

# Results

  - 200: msg is SuccessMessage
  - other status: *RemoteError, Error() is "Error: <status> - <body>"
  - network, DNS, timeout or unreadable body: *TransportError,
    Error() is "Error submitting form: <cause>"

Use errors.As to tell them apart:

	var remote *submission.RemoteError
	if errors.As(err, &remote) {
		slog.Warn("webhook rejected request", "status", remote.StatusCode)
	}
*/
package submission
