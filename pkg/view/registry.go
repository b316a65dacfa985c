package view

import (
	"fmt"
	"slices"
	"time"

	"github.com/dashdoc/dash/pkg/dict"
)

// Options holds the values used when building default nodes for a
// placeholder that is being filled.
type Options struct {
	// URL is the address a new WebView opens.
	URL string
	// TimeOnEachPage is how long a new PageView dwells on each page.
	TimeOnEachPage time.Duration
	// AnimationDuration is how long a new PageView takes to move between pages.
	AnimationDuration time.Duration
}

// DefaultOptions returns the options used by the [Default] registry.
func DefaultOptions() Options {
	return Options{
		URL:               "http://google.com",
		TimeOnEachPage:    time.Second,
		AnimationDuration: time.Second,
	}
}

// DecodeFunc builds a node from a record. Children are decoded through r.
type DecodeFunc func(r *Registry, d dict.Dict) (Node, error)

// NewFunc builds the default node of a variant.
type NewFunc func(r *Registry) (Node, error)

// Variant describes one node kind known to a registry.
type Variant struct {
	Tag     string   // Canonical tag written on encode
	Aliases []string // Additional tags accepted on decode
	Decode  DecodeFunc
	New     NewFunc
}

// Matches reports whether tag selects this variant.
func (v Variant) Matches(tag string) bool {
	return tag == v.Tag || slices.Contains(v.Aliases, tag)
}

// Registry is the ordered list of variants used to decode records and build
// default nodes. The order is fixed: Split, Page, WebPage, Color, Placeholder.
type Registry struct {
	variants []Variant
	opts     Options
}

// Default is the registry used by [FromDict].
var Default = NewRegistry(DefaultOptions())

// NewRegistry creates a registry holding the five built-in variants. opts
// controls the default nodes returned by [Registry.New].
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts: opts,
		variants: []Variant{
			{Tag: TagSplit, Aliases: []string{"Split"}, Decode: decodeSplit, New: newSplit},
			{Tag: TagPage, Aliases: []string{"Page"}, Decode: decodePage, New: newPage},
			{Tag: TagWebPage, Aliases: []string{"WebPage", "WebPageView"}, Decode: decodeWebPage, New: newWebPage},
			{Tag: TagColor, Aliases: []string{"ColorView"}, Decode: decodeColor, New: newColor},
			{Tag: TagPlaceholder, Aliases: []string{"Placeholder"}, Decode: decodePlaceholder, New: newPlaceholder},
		},
	}
}

// Options returns the options the registry builds default nodes with.
func (r *Registry) Options() Options {
	return r.opts
}

// Variants returns the registered variants in dispatch order.
func (r *Registry) Variants() []Variant {
	return slices.Clone(r.variants)
}

// Tags returns the canonical tags in dispatch order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.variants))
	for i, v := range r.variants {
		tags[i] = v.Tag
	}
	return tags
}

// Lookup returns the first variant matching tag.
func (r *Registry) Lookup(tag string) (Variant, bool) {
	for _, v := range r.variants {
		if v.Matches(tag) {
			return v, true
		}
	}
	return Variant{}, false
}

// Decode reads the "type" key of d and decodes d with the matching variant.
func (r *Registry) Decode(d dict.Dict) (Node, error) {
	tag, err := d.String(KeyType)
	if err != nil {
		return nil, err
	}
	v, ok := r.Lookup(tag)
	if !ok {
		return nil, &dict.InvalidValueError{
			Key:     KeyType,
			Message: fmt.Sprintf("couldn't create view from type %q", tag),
		}
	}
	return v.Decode(r, d)
}

// decodeChild decodes the nested record stored under key.
func (r *Registry) decodeChild(d dict.Dict, key string) (Node, error) {
	sub, err := d.Dict(key)
	if err != nil {
		return nil, err
	}
	return r.Decode(sub)
}

// New returns the default node of the variant selected by tag.
func (r *Registry) New(tag string) (Node, error) {
	v, ok := r.Lookup(tag)
	if !ok {
		return nil, &dict.InvalidValueError{
			Key:     KeyType,
			Message: fmt.Sprintf("unknown view type %q", tag),
		}
	}
	return v.New(r)
}

// defaultURL returns the configured default WebView address once it has
// been checked.
func (r *Registry) defaultURL() (string, error) {
	if _, err := dict.ParseURL(keyURL, r.opts.URL); err != nil {
		return "", err
	}
	return r.opts.URL, nil
}
