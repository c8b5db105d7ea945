// Package seo applies per-page metadata overrides to the page shell.
package seo

import "sync"

// Options are the metadata overrides a page may set. Empty values are
// ignored.
type Options struct {
	Title         string
	Description   string
	Keywords      string
	Canonical     string
	OGTitle       string
	OGDescription string
	OGImage       string
}

// MetadataSink receives a page's metadata overrides.
type MetadataSink interface {
	Apply(opts Options)
}

// Element identifies one metadata slot in the page shell.
type Element string

const (
	ElementTitle         Element = "title"
	ElementDescription   Element = `meta[name="description"]`
	ElementKeywords      Element = `meta[name="keywords"]`
	ElementCanonical     Element = `link[rel="canonical"]`
	ElementOGTitle       Element = `meta[property="og:title"]`
	ElementOGDescription Element = `meta[property="og:description"]`
	ElementOGImage       Element = `meta[property="og:image"]`
)

// Document is the metadata part of the page shell. Only elements present in
// the shell can be written; Apply never adds new ones.
type Document struct {
	mu       sync.RWMutex
	elements map[Element]string
	order    []Element
}

// NewDocument creates a shell holding the given elements with their initial
// values.
func NewDocument(initial map[Element]string) *Document {
	d := &Document{elements: make(map[Element]string, len(initial))}
	for _, el := range allElements {
		if v, ok := initial[el]; ok {
			d.elements[el] = v
			d.order = append(d.order, el)
		}
	}
	return d
}

var allElements = []Element{
	ElementTitle,
	ElementDescription,
	ElementKeywords,
	ElementCanonical,
	ElementOGTitle,
	ElementOGDescription,
	ElementOGImage,
}

// Apply writes each non-empty option to its element when the element exists.
func (d *Document) Apply(opts Options) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.set(ElementTitle, opts.Title)
	d.set(ElementDescription, opts.Description)
	d.set(ElementKeywords, opts.Keywords)
	d.set(ElementCanonical, opts.Canonical)
	d.set(ElementOGTitle, opts.OGTitle)
	d.set(ElementOGDescription, opts.OGDescription)
	d.set(ElementOGImage, opts.OGImage)
}

func (d *Document) set(el Element, value string) {
	if value == "" {
		return
	}
	if _, ok := d.elements[el]; !ok {
		return
	}
	d.elements[el] = value
}

// Get returns an element's value and whether the shell has it.
func (d *Document) Get(el Element) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.elements[el]
	return v, ok
}

// Elements lists the shell's elements in document order.
func (d *Document) Elements() []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Element, len(d.order))
	copy(out, d.order)
	return out
}
