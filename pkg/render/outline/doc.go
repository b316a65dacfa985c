// Package outline prints a view tree as an indented listing.
//
//	SplitView vertical at 0.5
//	├── PageView 2 pages, 3s on each, 500ms animation
//	│   ├── Color ██ #FF0000
//	│   └── PlaceholderView empty
//	└── WebView http://example.com at 1.2×
//
// [Render] styles the listing with lipgloss for the writer it is given;
// [Entries] returns the same rows as data for the HTTP API.
package outline
