package view

import (
	"math"
	"slices"
	"time"

	"github.com/dashdoc/dash/pkg/dict"
	"github.com/dashdoc/dash/pkg/errors"
)

// TagPage is the canonical tag of [Page].
const TagPage = "PageView"

const (
	keyPages             = "pages"
	keyTimeOnEachPage    = "timeOnEachPage"
	keyAnimationDuration = "animationDuration"
)

// Page shows its children one at a time, dwelling on each for TimeOnEachPage
// and spending AnimationDuration moving to the next.
//
// Timings are held as the seconds they were decoded from and written back
// unchanged.
type Page struct {
	base
	pages     []Node
	dwell     float64
	animation float64
}

// NewPage creates a paged view over pages.
func NewPage(pages []Node, timeOnEachPage, animationDuration time.Duration) *Page {
	return &Page{pages: pages, dwell: timeOnEachPage.Seconds(), animation: animationDuration.Seconds()}
}

// Kind returns [TagPage].
func (p *Page) Kind() string { return TagPage }

// Children returns the pages in display order.
func (p *Page) Children() []Node { return p.pages }

// SetEditing sets the editing flag on the page view and every page.
func (p *Page) SetEditing(editing bool) {
	p.editing = editing
	for _, page := range p.pages {
		page.SetEditing(editing)
	}
}

// Len returns the number of pages.
func (p *Page) Len() int { return len(p.pages) }

// TimeOnEachPage returns the dwell time per page.
func (p *Page) TimeOnEachPage() time.Duration { return seconds(p.dwell) }

// SetTimeOnEachPage sets the dwell time per page.
func (p *Page) SetTimeOnEachPage(d time.Duration) { p.dwell = d.Seconds() }

// AnimationDuration returns the time spent moving between pages.
func (p *Page) AnimationDuration() time.Duration { return seconds(p.animation) }

// SetAnimationDuration sets the time spent moving between pages.
func (p *Page) SetAnimationDuration(d time.Duration) { p.animation = d.Seconds() }

// Interval returns the time between the starts of two consecutive page moves.
func (p *Page) Interval() time.Duration { return seconds(p.dwell + p.animation) }

// seconds converts a number of seconds to a Duration, rounding to the
// nearest nanosecond and saturating at the Duration range.
func seconds(f float64) time.Duration {
	ns := math.Round(f * float64(time.Second))
	switch {
	case ns >= math.MaxInt64:
		return math.MaxInt64
	case ns <= math.MinInt64:
		return math.MinInt64
	}
	return time.Duration(ns)
}

// Next returns the index of the page shown after current, wrapping around.
// With no pages it returns 0.
func (p *Page) Next(current int) int {
	if len(p.pages) == 0 {
		return 0
	}
	return (current + 1) % len(p.pages)
}

// Append adds a page at the end. The page adopts the view's editing mode.
func (p *Page) Append(n Node) {
	n.SetEditing(p.editing)
	p.pages = append(p.pages, n)
}

// Insert adds a page before index i; i == Len() appends.
func (p *Page) Insert(i int, n Node) error {
	if i < 0 || i > len(p.pages) {
		return p.rangeError(i)
	}
	n.SetEditing(p.editing)
	p.pages = slices.Insert(p.pages, i, n)
	return nil
}

// Remove deletes and returns the page at index i.
func (p *Page) Remove(i int) (Node, error) {
	if i < 0 || i >= len(p.pages) {
		return nil, p.rangeError(i)
	}
	n := p.pages[i]
	p.pages = slices.Delete(p.pages, i, i+1)
	return n, nil
}

// Replace swaps the page at index i for n and returns the old page.
func (p *Page) Replace(i int, n Node) (Node, error) {
	if i < 0 || i >= len(p.pages) {
		return nil, p.rangeError(i)
	}
	n.SetEditing(p.editing)
	old := p.pages[i]
	p.pages[i] = n
	return old, nil
}

func (p *Page) rangeError(i int) error {
	return errors.New(errors.ErrCodeInvalidInput, "page index %d out of range [0, %d)", i, len(p.pages))
}

// Dict encodes the page view and every page. Timings are written in seconds.
func (p *Page) Dict() dict.Dict {
	pages := make([]any, len(p.pages))
	for i, page := range p.pages {
		pages[i] = page.Dict()
	}
	return tagged(TagPage, dict.Dict{
		keyPages:             pages,
		keyTimeOnEachPage:    p.dwell,
		keyAnimationDuration: p.animation,
	})
}

func decodePage(r *Registry, d dict.Dict) (Node, error) {
	records, err := d.Dicts(keyPages)
	if err != nil {
		return nil, err
	}
	dwell, err := d.Float(keyTimeOnEachPage)
	if err != nil {
		return nil, err
	}
	animation, err := d.Float(keyAnimationDuration)
	if err != nil {
		return nil, err
	}
	pages := make([]Node, len(records))
	for i, rec := range records {
		n, err := r.Decode(rec)
		if err != nil {
			return nil, err
		}
		pages[i] = n
	}
	return &Page{pages: pages, dwell: dwell, animation: animation}, nil
}

func newPage(r *Registry) (Node, error) {
	return NewPage(nil, r.opts.TimeOnEachPage, r.opts.AnimationDuration), nil
}
