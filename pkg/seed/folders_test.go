package seed

import (
	"strings"
	"testing"
)

func TestFolders_NamesAndCounts(t *testing.T) {
	folders := Folders()

	want := []struct {
		name     string
		requests int
	}{
		{"Billing 💰", 6},
		{"Appointments 📅", 3},
		{"Lab Reports 🧪", 2},
		{"Medical History 📋", 3},
		{"Telemedicine 📹", 2},
	}

	if len(folders) != len(want) {
		t.Fatalf("got %d folders, want %d", len(folders), len(want))
	}
	for i, w := range want {
		f := folders[i]
		if f.Name != w.name {
			t.Errorf("folder[%d].Name = %q, want %q", i, f.Name, w.name)
		}
		if !f.IsFolder() {
			t.Errorf("folder[%d] %q is not a folder", i, f.Name)
		}
		if got := f.RequestCount(); got != w.requests {
			t.Errorf("folder %q has %d requests, want %d", f.Name, got, w.requests)
		}
	}
}

func TestFolders_FreshCopies(t *testing.T) {
	first := Folders()
	first[0].Name = "mutated"
	first[0].Items = nil

	second := Folders()
	if second[0].Name != "Billing 💰" {
		t.Error("mutating one result leaked into the next call")
	}
	if len(second[0].Items) != 6 {
		t.Errorf("got %d billing requests after mutation, want 6", len(second[0].Items))
	}
}

func TestFolders_RequestShapes(t *testing.T) {
	for _, f := range Folders() {
		for _, item := range f.Items {
			req := item.Request
			if req == nil {
				t.Errorf("%s/%s has no request", f.Name, item.Name)
				continue
			}
			if req.Method == "" || req.URL == "" {
				t.Errorf("%s/%s missing method or url", f.Name, item.Name)
			}
			if req.Method == "POST" && req.Body != nil {
				if req.Body.Mode != "raw" {
					t.Errorf("%s/%s body mode = %q, want raw", f.Name, item.Name, req.Body.Mode)
				}
				if len(req.Header) == 0 {
					t.Errorf("%s/%s POST with body has no Content-Type header", f.Name, item.Name)
				}
			}
			if !strings.Contains(req.URL, "{{baseUrl") {
				t.Errorf("%s/%s url %q does not target a base url variable", f.Name, item.Name, req.URL)
			}
			for _, ev := range item.Events {
				if ev.Listen != "test" {
					t.Errorf("%s/%s has non-test event %q", f.Name, item.Name, ev.Listen)
				}
				if ev.Script == nil || len(ev.Script.Exec) == 0 {
					t.Errorf("%s/%s has an empty script", f.Name, item.Name)
				}
			}
		}
	}
}

func TestFolders_CaptureScripts(t *testing.T) {
	// The create requests capture ids into collection variables so later
	// requests in the run can reference them.
	folders := Folders()

	billing := folders[0]
	createInvoice := billing.Items[0]
	if len(createInvoice.Events) != 1 {
		t.Fatalf("Create Invoice has %d events, want 1", len(createInvoice.Events))
	}
	script := strings.Join(createInvoice.Events[0].Script.Exec, "\n")
	if !strings.Contains(script, "pm.collectionVariables.set('invoiceId'") {
		t.Error("Create Invoice script does not capture invoiceId")
	}

	appointments := folders[1]
	create := appointments.Items[0]
	script = strings.Join(create.Events[0].Script.Exec, "\n")
	if !strings.Contains(script, "appointmentId") {
		t.Error("Create Appointment script does not capture appointmentId")
	}
}
