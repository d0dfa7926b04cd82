package page

import (
	"fmt"
	"sort"
)

// Element ids the backdrop binds to
const (
	Background = "background"
	Container  = "container"
	Main       = "main"
	Loader     = "loader"

	MobileClass = "mobile"
)

// Element is a bound page element with a class set and a display style
type Element struct {
	ID      string
	classes map[string]struct{}
	display string
}

// AddClass adds a class to the element
func (e *Element) AddClass(class string) {
	e.classes[class] = struct{}{}
}

// HasClass reports whether the element carries class
func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

// Classes returns the element's classes in sorted order
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetDisplay sets the display style ("none", "flex", ...)
func (e *Element) SetDisplay(display string) {
	e.display = display
}

// Display returns the display style; empty means the default
func (e *Element) Display() string {
	return e.display
}

// Visible is false only for display "none"
func (e *Element) Visible() bool {
	return e.display != "none"
}

// Page is the set of elements the backdrop toggles. OnChange, when set, runs
// after every visibility change.
type Page struct {
	elements map[string]*Element
	OnChange func(*Page)
}

// New creates a page with the given element ids bound
func New(ids ...string) *Page {
	p := &Page{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		p.elements[id] = &Element{ID: id, classes: make(map[string]struct{})}
	}
	return p
}

// Default binds the background, container, main and loader elements, with
// the container hidden until content is shown.
func Default() *Page {
	p := New(Background, Container, Main, Loader)
	p.MustElement(Container).SetDisplay("none")
	return p
}

// Element looks up an element by id
func (p *Page) Element(id string) (*Element, bool) {
	e, ok := p.elements[id]
	return e, ok
}

// MustElement looks up an element and panics when it is not bound
func (p *Page) MustElement(id string) *Element {
	e, ok := p.elements[id]
	if !ok {
		panic(fmt.Sprintf("page: element %q not found", id))
	}
	return e
}

// MarkMobile tags the background, container and main elements with the
// mobile class. Elements that are not bound are skipped.
func (p *Page) MarkMobile() {
	for _, id := range []string{Background, Container, Main} {
		if e, ok := p.elements[id]; ok {
			e.AddClass(MobileClass)
		}
	}
}

// ShowContent reveals the container and hides the loader
func (p *Page) ShowContent() {
	if e, ok := p.elements[Container]; ok {
		e.SetDisplay("flex")
	}
	if e, ok := p.elements[Loader]; ok {
		e.SetDisplay("none")
	}
	if p.OnChange != nil {
		p.OnChange(p)
	}
}

// Loading reports whether the loader is still visible
func (p *Page) Loading() bool {
	e, ok := p.elements[Loader]
	return ok && e.Visible()
}
