// Package postman models the subset of the Postman Collection v2.1 format
// that colman reads and writes.
package postman

import (
	"encoding/json"
	"regexp"
	"sort"
)

// Info holds collection-level metadata.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Schema      string `json:"schema,omitempty"`
}

// Collection is the root document. Top-level fields that colman does not
// model (tooling extensions, protocolProfileBehavior, etc.) are kept in
// Extra so a load/save round trip never drops them.
type Collection struct {
	Info      *Info           `json:"info,omitempty"`
	Items     []*Item         `json:"item"`
	Events    []*Event        `json:"event,omitempty"`
	Variables []*Variable     `json:"variable,omitempty"`
	Auth      json.RawMessage `json:"auth,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Item is either a folder (Items set, Request nil) or a single request.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Events      []*Event `json:"event,omitempty"`
	Request     *Request `json:"request,omitempty"`
	Items       []*Item  `json:"item,omitempty"`
}

// Request is one HTTP call definition.
type Request struct {
	Method      string   `json:"method"`
	Header      []Header `json:"header,omitempty"`
	Body        *Body    `json:"body,omitempty"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
}

// Header is a single key/value request header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Body carries the request payload. Only raw mode is produced by colman;
// the raw string may contain {{variable}} placeholders resolved by the
// collection runner, never by this tool.
type Body struct {
	Mode string `json:"mode"`
	Raw  string `json:"raw,omitempty"`
}

// Event attaches a script to a request lifecycle hook (e.g. "test").
type Event struct {
	Listen string  `json:"listen"`
	Script *Script `json:"script,omitempty"`
}

// Script is an opaque script payload. It is stored, never executed.
type Script struct {
	Exec []string `json:"exec"`
	Type string   `json:"type,omitempty"`
}

// Variable is a collection-level variable definition.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// IsFolder reports whether the item is a folder rather than a request.
func (i *Item) IsFolder() bool {
	return i.Request == nil
}

// RequestCount returns the number of requests in the item, recursing into
// nested folders.
func (i *Item) RequestCount() int {
	if !i.IsFolder() {
		return 1
	}
	n := 0
	for _, child := range i.Items {
		n += child.RequestCount()
	}
	return n
}

// AddFolder appends folders to the end of the collection's item list.
// Appending is the only mutation colman performs; nothing is ever
// deduplicated, reordered, or removed.
func (c *Collection) AddFolder(folders ...*Item) {
	c.Items = append(c.Items, folders...)
}

// Folders returns the top-level folder items.
func (c *Collection) Folders() []*Item {
	var out []*Item
	for _, it := range c.Items {
		if it.IsFolder() {
			out = append(out, it)
		}
	}
	return out
}

// RequestCount returns the total number of requests in the collection.
func (c *Collection) RequestCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.RequestCount()
	}
	return n
}

var templateVarRe = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)\}\}`)

// TemplateVars returns the sorted set of {{variable}} placeholder names
// referenced anywhere in the collection's URLs, headers, and raw bodies.
// Informational only: colman never substitutes them.
func (c *Collection) TemplateVars() []string {
	seen := make(map[string]bool)
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			if req := it.Request; req != nil {
				collectVars(req.URL, seen)
				for _, h := range req.Header {
					collectVars(h.Value, seen)
				}
				if req.Body != nil {
					collectVars(req.Body.Raw, seen)
				}
			}
			walk(it.Items)
		}
	}
	walk(c.Items)

	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

func collectVars(s string, seen map[string]bool) {
	for _, m := range templateVarRe.FindAllStringSubmatch(s, -1) {
		seen[m[1]] = true
	}
}
