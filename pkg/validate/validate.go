// Package validate checks collection files against the subset of the
// Postman Collection v2.1 schema that colman understands.
package validate

import (
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchema is a draft-07 schema for the collection subset: a root
// object with an ordered "item" array of folders and requests.
const collectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["item"],
  "properties": {
    "info": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "description": {"type": "string"},
        "version": {"type": "string"},
        "schema": {"type": "string"}
      }
    },
    "item": {
      "type": "array",
      "items": {"$ref": "#/definitions/item"}
    }
  },
  "definitions": {
    "item": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "description": {"type": "string"},
        "item": {
          "type": "array",
          "items": {"$ref": "#/definitions/item"}
        },
        "event": {
          "type": "array",
          "items": {"$ref": "#/definitions/event"}
        },
        "request": {"$ref": "#/definitions/request"}
      }
    },
    "request": {
      "type": "object",
      "required": ["method", "url"],
      "properties": {
        "method": {"type": "string", "pattern": "^[A-Z]+$"},
        "url": {"type": "string"},
        "description": {"type": "string"},
        "header": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["key", "value"],
            "properties": {
              "key": {"type": "string"},
              "value": {"type": "string"}
            }
          }
        },
        "body": {
          "type": "object",
          "required": ["mode"],
          "properties": {
            "mode": {"type": "string"},
            "raw": {"type": "string"}
          }
        }
      }
    },
    "event": {
      "type": "object",
      "required": ["listen"],
      "properties": {
        "listen": {"type": "string"},
        "script": {
          "type": "object",
          "properties": {
            "exec": {"type": "array", "items": {"type": "string"}},
            "type": {"type": "string"}
          }
        }
      }
    }
  }
}`

// Issue is a single schema violation.
type Issue struct {
	Field       string // JSON path of the offending field
	Description string // Human-readable description
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// Bytes validates a raw collection document. A nil slice means the
// document conforms.
func Bytes(data []byte) ([]Issue, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(collectionSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate collection: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}
	issues := make([]Issue, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		issues = append(issues, Issue{Field: re.Field(), Description: re.Description()})
	}
	return issues, nil
}

// File validates the collection file at path.
func File(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	return Bytes(data)
}
