// Package server exposes a [storage.Store] of Dash documents over HTTP.
//
// # Routes
//
//	GET    /healthz                   status and build information
//	GET    /documents                 {"documents": [names...]}
//	POST   /documents                 create under a random name; empty body creates a placeholder
//	GET    /documents/{name}          stored JSON, with an ETag
//	PUT    /documents/{name}          validate, normalize and store
//	DELETE /documents/{name}          remove
//	GET    /documents/{name}/outline  [{path, type, depth, summary}...]
//
// Every write is decoded through package document before it is stored, so
// the store only ever holds documents that load. Errors are JSON objects
// with "code" and "error"; decode failures are 422 and add the "key" that
// failed.
//
// [storage.Store]: github.com/dashdoc/dash/pkg/storage#Store
package server
