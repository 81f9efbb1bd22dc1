// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard implements the two-step certificate request flow.

# States

A Session is on one of two steps:

	select_type  ──SelectType(label)──▶  fill_details
	     ▲                                   │
	     └─────────GoBack / Reset────────────┘

Submit is only valid on fill_details. A successful submit keeps the session
on fill_details with a success Outcome (the "submitted" screen); Reset is
the "create another certificate" action. A failed submit records the error
message in Outcome so the form can show it.

Calling an action on the wrong step returns an error wrapping ErrWrongStep.

# Validation

BuildRequest checks presence only:

  - name and email must be non-empty after trimming
  - blood group is required for Blood Donation Camp and dropped otherwise
  - a missing date defaults to today

Failures are *ValidationError and nothing is submitted.

# Isolation

Session has no internal locking. Each user gets their own Session through
the store, which copies on every read and write.
*/
package wizard
