package storage

import (
	"sort"

	"github.com/carestack/colman/pkg/postman"
)

// FolderSet is a group of folders in YAML form, the editable source format
// for custom augmentations (`colman augment --from set.yaml`).
type FolderSet struct {
	Name    string   `yaml:"name,omitempty"` // Optional label for the set
	Folders []Folder `yaml:"folders"`        // Folders in append order
}

// Folder is a named group of request definitions.
type Folder struct {
	Name     string       `yaml:"name"`               // Display name (may contain emoji)
	Requests []RequestDef `yaml:"requests,omitempty"` // Requests in order
}

// RequestDef is the YAML shape of a single request.
type RequestDef struct {
	Name        string            `yaml:"name"`                  // Request name
	Method      string            `yaml:"method"`                // HTTP method
	URL         string            `yaml:"url"`                   // URL (can contain {{variables}})
	Headers     map[string]string `yaml:"headers,omitempty"`     // HTTP headers
	Body        string            `yaml:"body,omitempty"`        // Raw body payload
	Description string            `yaml:"description,omitempty"` // Optional description
	Test        []string          `yaml:"test,omitempty"`        // Post-response script lines
}

// Items converts the folder set to Postman collection items.
func (fs FolderSet) Items() []*postman.Item {
	items := make([]*postman.Item, 0, len(fs.Folders))
	for _, f := range fs.Folders {
		items = append(items, f.Item())
	}
	return items
}

// Item converts one folder to a Postman folder item.
func (f Folder) Item() *postman.Item {
	folder := &postman.Item{Name: f.Name, Items: []*postman.Item{}}
	for _, r := range f.Requests {
		folder.Items = append(folder.Items, r.Item())
	}
	return folder
}

// Item converts one request definition to a Postman request item.
// Headers are emitted in sorted key order since the YAML map is unordered.
func (r RequestDef) Item() *postman.Item {
	item := &postman.Item{
		Name: r.Name,
		Request: &postman.Request{
			Method:      r.Method,
			URL:         r.URL,
			Description: r.Description,
		},
	}
	if len(r.Headers) > 0 {
		keys := make([]string, 0, len(r.Headers))
		for k := range r.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			item.Request.Header = append(item.Request.Header, postman.Header{Key: k, Value: r.Headers[k]})
		}
	}
	if r.Body != "" {
		item.Request.Body = &postman.Body{Mode: "raw", Raw: r.Body}
	}
	if len(r.Test) > 0 {
		item.Events = []*postman.Event{{
			Listen: "test",
			Script: &postman.Script{Exec: r.Test, Type: "text/javascript"},
		}}
	}
	return item
}

// FromItems converts Postman folder items back to the YAML shape. Only the
// fields the YAML format models survive; non-raw bodies and non-test
// events are dropped.
func FromItems(name string, items []*postman.Item) FolderSet {
	set := FolderSet{Name: name}
	for _, it := range items {
		if !it.IsFolder() {
			continue
		}
		folder := Folder{Name: it.Name}
		for _, child := range it.Items {
			if child.Request == nil {
				continue
			}
			def := RequestDef{
				Name:        child.Name,
				Method:      child.Request.Method,
				URL:         child.Request.URL,
				Description: child.Request.Description,
			}
			if len(child.Request.Header) > 0 {
				def.Headers = make(map[string]string, len(child.Request.Header))
				for _, h := range child.Request.Header {
					def.Headers[h.Key] = h.Value
				}
			}
			if child.Request.Body != nil {
				def.Body = child.Request.Body.Raw
			}
			for _, ev := range child.Events {
				if ev.Listen == "test" && ev.Script != nil {
					def.Test = ev.Script.Exec
					break
				}
			}
			folder.Requests = append(folder.Requests, def)
		}
		set.Folders = append(set.Folders, folder)
	}
	return set
}
