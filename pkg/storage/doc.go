// Package storage persists Dash documents by name.
//
// A [Store] moves raw JSON bytes; it never decodes them. Callers that need
// validation (the HTTP API, the CLI) load the bytes through package
// document first and store the normalized result.
//
// Backends are chosen by URL with [Open]:
//
//	s, err := storage.Open(ctx, "redis://localhost:6379/0")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
// Every backend reports reads and writes to the store hooks of package
// observability.
package storage
