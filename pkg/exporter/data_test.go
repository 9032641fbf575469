package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rosterctl/pkg/roster"

	"gopkg.in/yaml.v3"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleRoster(), &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"section", "courseCode", "subjectName", "facultyName", "yearLevel", "department", "students", "schedules"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(sampleRoster(), &buf); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	var got roster.Roster
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got.Section != "BSIT4D" || len(got.Schedules) != 1 || got.Schedules[0].Room != "Makeshift-06" {
		t.Errorf("unexpected YAML content:\n%s", buf.String())
	}
}

func TestWriteStudentsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStudentsCSV(sampleRoster(), &buf); err != nil {
		t.Fatalf("WriteStudentsCSV failed: %v", err)
	}

	want := "student_no,full_name,section,course_code\n2022310039,\"ABUTON, Harold Y\",BSIT4D,IT413\n"
	if buf.String() != want {
		t.Errorf("unexpected CSV:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write("pdf", sampleRoster(), Term{}, &buf)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
