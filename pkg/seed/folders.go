// Package seed defines the built-in folder set that colman appends to the
// hospital API collection: the endpoints that were missing from the
// original export, with example payloads and capture scripts.
package seed

import (
	"github.com/carestack/colman/pkg/postman"
)

// jsonHeader is the Content-Type header shared by every POST request.
func jsonHeader() []postman.Header {
	return []postman.Header{{Key: "Content-Type", Value: "application/json"}}
}

// testScript wraps script lines in a Postman "test" lifecycle event.
func testScript(lines ...string) []*postman.Event {
	return []*postman.Event{{
		Listen: "test",
		Script: &postman.Script{
			Exec: lines,
			Type: "text/javascript",
		},
	}}
}

func rawBody(raw string) *postman.Body {
	return &postman.Body{Mode: "raw", Raw: raw}
}

// Folders returns the five built-in folders in append order. Each call
// returns fresh values so callers may mutate the result freely.
func Folders() []*postman.Item {
	return []*postman.Item{
		billing(),
		appointments(),
		labReports(),
		medicalHistory(),
		telemedicine(),
	}
}

func billing() *postman.Item {
	return &postman.Item{
		Name: "Billing 💰",
		Items: []*postman.Item{
			{
				Name: "Create Invoice",
				Events: testScript(
					"if (pm.response.code === 201) {",
					"    const response = pm.response.json();",
					"    if (response.data && response.data._id) {",
					"        pm.collectionVariables.set('invoiceId', response.data._id);",
					"        console.log('✅ Invoice created:', response.data._id);",
					"    }",
					"}",
				),
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"hospitalId\": \"{{hospitalId}}\",\n  \"status\": \"draft\",\n  \"items\": [{\"description\": \"Consultation\", \"quantity\": 1, \"unitPrice\": 500, \"amount\": 500}],\n  \"subtotal\": 500,\n  \"taxAmount\": 90,\n  \"totalAmount\": 590,\n  \"currency\": \"INR\"\n}"),
					URL:    "{{baseUrl}}/billing/invoices",
				},
			},
			{
				Name: "Get All Invoices",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrl}}/billing/invoices?page=1&limit=10",
				},
			},
			{
				Name: "Download Invoice PDF ⭐ (P0)",
				Request: &postman.Request{
					Method:      "GET",
					URL:         "{{baseUrl}}/billing/invoices/{{invoiceId}}/download",
					Description: "🎯 P0 CRITICAL: Professional invoice PDF with GST",
				},
			},
			{
				Name: "Create Payment",
				Events: testScript(
					"if (pm.response.code === 201) {",
					"    const response = pm.response.json();",
					"    if (response.data && response.data._id) {",
					"        pm.collectionVariables.set('paymentId', response.data._id);",
					"        console.log('✅ Payment created');",
					"    }",
					"}",
				),
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"invoiceId\": \"{{invoiceId}}\",\n  \"patientId\": \"{{patientId}}\",\n  \"amount\": 590,\n  \"currency\": \"INR\",\n  \"paymentMethod\": \"upi\",\n  \"status\": \"completed\"\n}"),
					URL:    "{{baseUrl}}/billing/payments",
				},
			},
			{
				Name: "Send Receipt Email ⭐ (P0)",
				Request: &postman.Request{
					Method:      "POST",
					Header:      jsonHeader(),
					Body:        rawBody("{\n  \"email\": \"patient@example.com\"\n}"),
					URL:         "{{baseUrl}}/billing/payments/{{paymentId}}/send-receipt",
					Description: "🎯 P0 CRITICAL: Send HTML receipt email",
				},
			},
			{
				Name: "Get Payment Stats",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrl}}/billing/stats",
				},
			},
		},
	}
}

func appointments() *postman.Item {
	return &postman.Item{
		Name: "Appointments 📅",
		Items: []*postman.Item{
			{
				Name: "Create Appointment ⭐",
				Events: testScript(
					"if (pm.response.code === 201) {",
					"    pm.collectionVariables.set('appointmentId', pm.response.json().data?._id);",
					"    console.log('✅ Appointment created');",
					"}",
					"if (pm.response.code === 409) {",
					"    console.log('✅ P0: Overbooking prevented!');",
					"}",
				),
				Request: &postman.Request{
					Method:      "POST",
					Header:      jsonHeader(),
					Body:        rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"doctorId\": \"{{doctorId}}\",\n  \"startTime\": \"2025-12-15T10:00:00Z\",\n  \"endTime\": \"2025-12-15T10:30:00Z\",\n  \"type\": \"consultation\",\n  \"status\": \"scheduled\"\n}"),
					URL:         "{{baseUrlV1}}/appointments",
					Description: "🎯 P0 TEST: Try same time twice for overbooking test",
				},
			},
			{
				Name: "Get All Appointments",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrlV1}}/appointments",
				},
			},
			{
				Name: "Check Availability",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrlV1}}/appointments/availability?doctorId={{doctorId}}&date=2025-12-15",
				},
			},
		},
	}
}

func labReports() *postman.Item {
	return &postman.Item{
		Name: "Lab Reports 🧪",
		Items: []*postman.Item{
			{
				Name: "Create Lab Report",
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"testCategory\": \"blood\",\n  \"testName\": \"CBC\",\n  \"testDate\": \"2025-12-11T10:00:00Z\",\n  \"status\": \"completed\",\n  \"results\": [{\"parameterName\": \"Hemoglobin\", \"value\": \"14.5\", \"unit\": \"g/dL\", \"normalRange\": \"13-17\", \"status\": \"normal\"}]\n}"),
					URL:    "{{baseUrl}}/lab-reports",
				},
			},
			{
				Name: "Get Lab Reports",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrl}}/lab-reports",
				},
			},
		},
	}
}

func medicalHistory() *postman.Item {
	return &postman.Item{
		Name: "Medical History 📋",
		Items: []*postman.Item{
			{
				Name: "Create Allergy",
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"allergen\": \"Penicillin\",\n  \"type\": \"medication\",\n  \"severity\": \"severe\",\n  \"reaction\": \"Anaphylaxis\"\n}"),
					URL:    "{{baseUrl}}/medical-history/allergies",
				},
			},
			{
				Name: "Get Critical Allergies",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrl}}/medical-history/allergies/patient/{{patientId}}/critical",
				},
			},
			{
				Name: "Record Vital Signs",
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"bloodPressure\": {\"systolic\": 120, \"diastolic\": 80},\n  \"heartRate\": 72,\n  \"temperature\": 98.6\n}"),
					URL:    "{{baseUrl}}/medical-history/vital-signs",
				},
			},
		},
	}
}

func telemedicine() *postman.Item {
	return &postman.Item{
		Name: "Telemedicine 📹",
		Items: []*postman.Item{
			{
				Name: "Create Session",
				Request: &postman.Request{
					Method: "POST",
					Header: jsonHeader(),
					Body:   rawBody("{\n  \"patientId\": \"{{patientId}}\",\n  \"doctorId\": \"{{doctorId}}\",\n  \"sessionType\": \"video\",\n  \"scheduledAt\": \"2025-12-15T14:00:00Z\"\n}"),
					URL:    "{{baseUrl}}/telemedicine",
				},
			},
			{
				Name: "Get All Sessions",
				Request: &postman.Request{
					Method: "GET",
					URL:    "{{baseUrl}}/telemedicine",
				},
			},
		},
	}
}
