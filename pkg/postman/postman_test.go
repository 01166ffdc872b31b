package postman

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "not json at all",
			input:   "not json",
			wantErr: ErrMalformed,
		},
		{
			name:    "top-level array",
			input:   `[1, 2, 3]`,
			wantErr: ErrMalformed,
		},
		{
			name:    "missing item field",
			input:   `{"info": {"name": "x"}}`,
			wantErr: ErrSchema,
		},
		{
			name:    "item is not an array",
			input:   `{"item": "oops"}`,
			wantErr: ErrSchema,
		},
		{
			name:    "item array of scalars",
			input:   `{"item": [42]}`,
			wantErr: ErrSchema,
		},
		{
			name:    "info has wrong shape",
			input:   `{"item": [], "info": "flat"}`,
			wantErr: ErrSchema,
		},
		{
			name:  "empty item array is valid",
			input: `{"item": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "colman-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	_, err = Load(filepath.Join(tmpDir, "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestRoundTrip_PreservesMetadata(t *testing.T) {
	input := `{
  "info": {"name": "CareStack API", "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"},
  "item": [
    {
      "name": "Patients",
      "item": [
        {
          "name": "Get Patient",
          "request": {"method": "GET", "url": "{{baseUrl}}/patients/{{patientId}}"}
        }
      ]
    }
  ],
  "variable": [{"key": "baseUrl", "value": "http://localhost:3000/api"}],
  "auth": {"type": "bearer"},
  "protocolProfileBehavior": {"disableBodyPruning": true}
}`

	c, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if c.Info == nil || c.Info.Name != "CareStack API" {
		t.Errorf("info not preserved: %+v", c.Info)
	}
	if len(c.Variables) != 1 || c.Variables[0].Key != "baseUrl" {
		t.Errorf("variables not preserved: %+v", c.Variables)
	}
	if len(c.Auth) == 0 {
		t.Error("auth not preserved")
	}
	if _, ok := c.Extra["protocolProfileBehavior"]; !ok {
		t.Error("unknown top-level field not preserved")
	}

	encoded, err := Encode(c, 2)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	reparsed, err := Parse(encoded)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if !reflect.DeepEqual(reparsed.Items, c.Items) {
		t.Errorf("items changed across round trip:\n got %+v\nwant %+v", reparsed.Items, c.Items)
	}
	if !reflect.DeepEqual(reparsed.Info, c.Info) {
		t.Errorf("info changed across round trip: got %+v, want %+v", reparsed.Info, c.Info)
	}
	if !reflect.DeepEqual(reparsed.Variables, c.Variables) {
		t.Errorf("variables changed across round trip: got %+v, want %+v", reparsed.Variables, c.Variables)
	}

	var behavior map[string]bool
	if err := json.Unmarshal(reparsed.Extra["protocolProfileBehavior"], &behavior); err != nil {
		t.Fatalf("extra field not valid JSON after round trip: %v", err)
	}
	if !behavior["disableBodyPruning"] {
		t.Error("extra field value changed across round trip")
	}
}

func TestEncode_Format(t *testing.T) {
	c := &Collection{Items: []*Item{{
		Name: "Search",
		Request: &Request{
			Method: "GET",
			URL:    "{{baseUrl}}/patients?q=a&limit=10",
		},
	}}}

	data, err := Encode(c, 2)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "{\n  \"") {
		t.Errorf("output not indented with 2 spaces: %q", out[:20])
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output missing trailing newline")
	}
	if !strings.Contains(out, "{{baseUrl}}/patients?q=a&limit=10") {
		t.Errorf("URL not written verbatim: %s", out)
	}
	if strings.Contains(out, `\u0026`) {
		t.Error("HTML escaping applied to URL ampersand")
	}
}

func TestEncode_NilItemsBecomesEmptyArray(t *testing.T) {
	data, err := Encode(&Collection{}, 2)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.Contains(string(data), `"item": []`) {
		t.Errorf("nil items should encode as empty array, got: %s", data)
	}
}

func TestItem_Helpers(t *testing.T) {
	folder := &Item{
		Name: "Billing",
		Items: []*Item{
			{Name: "a", Request: &Request{Method: "GET", URL: "/a"}},
			{Name: "sub", Items: []*Item{
				{Name: "b", Request: &Request{Method: "POST", URL: "/b"}},
			}},
		},
	}

	if !folder.IsFolder() {
		t.Error("folder reported as request")
	}
	if folder.Items[0].IsFolder() {
		t.Error("request reported as folder")
	}
	if got := folder.RequestCount(); got != 2 {
		t.Errorf("RequestCount = %d, want 2", got)
	}
}

func TestCollection_TemplateVars(t *testing.T) {
	c := &Collection{Items: []*Item{{
		Name: "Billing",
		Items: []*Item{{
			Name: "Create Invoice",
			Request: &Request{
				Method: "POST",
				Header: []Header{{Key: "Authorization", Value: "Bearer {{token}}"}},
				Body:   &Body{Mode: "raw", Raw: `{"patientId": "{{patientId}}"}`},
				URL:    "{{baseUrl}}/billing/invoices",
			},
		}},
	}}}

	want := []string{"baseUrl", "patientId", "token"}
	if got := c.TemplateVars(); !reflect.DeepEqual(got, want) {
		t.Errorf("TemplateVars = %v, want %v", got, want)
	}
}
