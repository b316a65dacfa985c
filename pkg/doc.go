// Package pkg provides the core libraries for Dash view-tree documents.
//
// # Overview
//
// A Dash document is a dashboard described as a tree of views, stored as a
// JSON dictionary. The pkg directory is organized into these areas:
//
//  1. [dict] and [view] - Typed record access and the view variants
//  2. [document] - The document root, JSON load/save and bundles on disk
//  3. [storage] - Document stores (files, memory, Redis, MongoDB)
//  4. [server] - HTTP API over a store
//  5. [render] - Outlines, node-link graphs and format conversion
//  6. [errors], [observability], [cache], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Dash:
//
//	contents.json
//	     ↓
//	[document] package (parse JSON, reject non-object roots)
//	     ↓
//	[view] package (dispatch on "type", decode children recursively)
//	     ↓
//	edit, inspect, render as outline or graph
//	     ↓
//	[view] encode → [document] save → contents.json
//
// # Quick Start
//
// Load a document, fill its first empty placeholder and save it:
//
//	import (
//	    "github.com/dashdoc/dash/pkg/document"
//	    "github.com/dashdoc/dash/pkg/view"
//	)
//
//	doc, err := document.ReadFile("board.dash")
//	if err != nil {
//	    return err
//	}
//	n, _ := doc.Find("/0")
//	if p, ok := n.(*view.Placeholder); ok {
//	    p.Select(doc.Registry(), view.TagColor)
//	}
//	return document.WriteFile("board.dash", doc, true)
//
// [dict]: github.com/dashdoc/dash/pkg/dict
// [view]: github.com/dashdoc/dash/pkg/view
// [document]: github.com/dashdoc/dash/pkg/document
// [storage]: github.com/dashdoc/dash/pkg/storage
// [server]: github.com/dashdoc/dash/pkg/server
// [render]: github.com/dashdoc/dash/pkg/render
// [errors]: github.com/dashdoc/dash/pkg/errors
// [observability]: github.com/dashdoc/dash/pkg/observability
// [cache]: github.com/dashdoc/dash/pkg/cache
// [buildinfo]: github.com/dashdoc/dash/pkg/buildinfo
package pkg
