// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps wizard sessions between HTTP requests.

Two back-ends implement Store:

  - MemoryStore: a mutex-guarded map, the default
  - SQLStore: the wizard_session table on SQLite or PostgreSQL

Both return copies from Get and copy on Save, so a handler can mutate the
session it read without affecting anyone else until it saves.

Sessions idle for longer than the TTL are treated as missing. Get removes
an expired session when it sees one, and Prune removes all of them.
Nothing runs in the background.

	st, err := store.Open(cfg.SessionStore, cfg.DatabaseURL, cfg.SessionTTL)
	if err != nil {
		return err
	}
	defer st.Close()

Only session state is stored. Names, emails and the rest of the form are
never persisted.
*/
package store
