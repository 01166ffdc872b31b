package postman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Error taxonomy for collection files. A missing file surfaces as the
// wrapped os error (errors.Is(err, fs.ErrNotExist)).
var (
	// ErrMalformed means the file is not a valid JSON object.
	ErrMalformed = errors.New("malformed collection document")
	// ErrSchema means the document parsed but lacks the expected shape,
	// most importantly the top-level "item" array.
	ErrSchema = errors.New("collection schema error")
)

// DefaultIndent is the indentation written by Save unless overridden.
const DefaultIndent = 2

// Parse decodes a collection document. It distinguishes malformed JSON
// (ErrMalformed) from a well-formed document of the wrong shape (ErrSchema).
func Parse(data []byte) (*Collection, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	itemRaw, ok := raw["item"]
	if !ok {
		return nil, fmt.Errorf(`%w: missing top-level "item" array`, ErrSchema)
	}

	c := &Collection{}
	if err := json.Unmarshal(itemRaw, &c.Items); err != nil {
		return nil, fmt.Errorf(`%w: "item" is not an array of items: %v`, ErrSchema, err)
	}

	for key, val := range raw {
		var err error
		switch key {
		case "item":
			// handled above
		case "info":
			err = json.Unmarshal(val, &c.Info)
		case "event":
			err = json.Unmarshal(val, &c.Events)
		case "variable":
			err = json.Unmarshal(val, &c.Variables)
		case "auth":
			c.Auth = val
		default:
			if c.Extra == nil {
				c.Extra = make(map[string]json.RawMessage)
			}
			c.Extra[key] = val
		}
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %q field: %v", ErrSchema, key, err)
		}
	}

	return c, nil
}

// marshalNoEscape is json.Marshal without HTML escaping, so URLs with
// query strings and script payloads survive untouched.
func marshalNoEscape(v interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON merges the typed fields with the preserved unknown ones.
// encoding/json emits map keys in sorted order, so output is deterministic.
func (c *Collection) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.Extra)+5)
	for k, v := range c.Extra {
		out[k] = v
	}

	items := c.Items
	if items == nil {
		items = []*Item{}
	}
	itemRaw, err := marshalNoEscape(items)
	if err != nil {
		return nil, err
	}
	out["item"] = itemRaw

	if c.Info != nil {
		if out["info"], err = marshalNoEscape(c.Info); err != nil {
			return nil, err
		}
	}
	if len(c.Events) > 0 {
		if out["event"], err = marshalNoEscape(c.Events); err != nil {
			return nil, err
		}
	}
	if len(c.Variables) > 0 {
		if out["variable"], err = marshalNoEscape(c.Variables); err != nil {
			return nil, err
		}
	}
	if len(c.Auth) > 0 {
		out["auth"] = c.Auth
	}

	return marshalNoEscape(out)
}

// Encode renders the collection as pretty-printed JSON with the given
// indent width and a trailing newline. HTML escaping is off so URLs and
// scripts stay readable.
func Encode(c *Collection, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads and parses the collection file at path.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	return Parse(data)
}

// Save writes the collection back to path. The document is fully encoded
// in memory first, so an encoding failure never truncates the file.
func Save(path string, c *Collection, indent int) error {
	data, err := Encode(c, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
