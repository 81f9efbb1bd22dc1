// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the certificate wizard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, client)

st is the session store and client is anything that can submit a
certificate request, usually a *submission.Client.

# Endpoints

Health:

	GET /health

Option lists:

	GET /certificate-types - The seven certificates, in display order
	GET /blood-groups      - The eight blood groups

Wizard sessions:

	POST   /sessions             - Start on the selection screen
	GET    /sessions/{id}        - Current screen
	DELETE /sessions/{id}        - End the session
	POST   /sessions/{id}/select - Pick a certificate type
	POST   /sessions/{id}/back   - Return to selection
	POST   /sessions/{id}/submit - Validate and send the request
	POST   /sessions/{id}/reset  - Start another certificate

Everything except /health and / goes through middleware.WithLogging.
*/
package router
