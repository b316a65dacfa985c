package view

import (
	"math"

	"github.com/dashdoc/dash/pkg/dict"
)

// TagWebPage is the canonical tag of [WebPage].
const TagWebPage = "WebView"

// Zoom limits for [WebPage.ZoomIn] and [WebPage.ZoomOut].
const (
	DefaultZoom = 1.0
	ZoomStep    = 0.2
	MinZoom     = 0.2
)

const (
	keyURL  = "url"
	keyZoom = "zoom"
)

// WebPage shows a web page at a zoom factor. The address is kept exactly as
// it was given.
type WebPage struct {
	base
	url  string
	zoom float64
}

// NewWebPage creates a web view of rawURL. The address is not validated.
func NewWebPage(rawURL string, zoom float64) *WebPage {
	return &WebPage{url: rawURL, zoom: zoom}
}

// Kind returns [TagWebPage].
func (w *WebPage) Kind() string { return TagWebPage }

// Children returns nil.
func (w *WebPage) Children() []Node { return nil }

// SetEditing sets the editing flag.
func (w *WebPage) SetEditing(editing bool) { w.editing = editing }

// URL returns the page address.
func (w *WebPage) URL() string { return w.url }

// SetURL replaces the page address after checking it with [dict.ParseURL].
func (w *WebPage) SetURL(rawURL string) error {
	if _, err := dict.ParseURL(keyURL, rawURL); err != nil {
		return err
	}
	w.url = rawURL
	return nil
}

// Zoom returns the zoom factor.
func (w *WebPage) Zoom() float64 { return w.zoom }

// SetZoom sets the zoom factor, never going below MinZoom.
func (w *WebPage) SetZoom(z float64) {
	w.zoom = max(roundZoom(z), MinZoom)
}

// ZoomIn increases the zoom factor by one step.
func (w *WebPage) ZoomIn() { w.SetZoom(w.zoom + ZoomStep) }

// ZoomOut decreases the zoom factor by one step.
func (w *WebPage) ZoomOut() { w.SetZoom(w.zoom - ZoomStep) }

// Dict encodes the web view.
func (w *WebPage) Dict() dict.Dict {
	return tagged(TagWebPage, dict.Dict{
		keyURL:  w.url,
		keyZoom: w.zoom,
	})
}

// roundZoom keeps repeated steps from accumulating float error.
func roundZoom(z float64) float64 {
	return math.Round(z*100) / 100
}

func decodeWebPage(_ *Registry, d dict.Dict) (Node, error) {
	u, err := d.String(keyURL)
	if err != nil {
		return nil, err
	}
	if _, err := dict.ParseURL(keyURL, u); err != nil {
		return nil, err
	}
	zoom, err := d.FloatOr(keyZoom, DefaultZoom)
	if err != nil {
		return nil, err
	}
	return NewWebPage(u, zoom), nil
}

func newWebPage(r *Registry) (Node, error) {
	u, err := r.defaultURL()
	if err != nil {
		return nil, err
	}
	return NewWebPage(u, DefaultZoom), nil
}
