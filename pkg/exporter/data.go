package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rosterctl/pkg/roster"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes the roster as indented JSON.
func WriteJSON(r *roster.Roster, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode roster as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the roster as YAML.
func WriteYAML(r *roster.Roster, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode roster as YAML: %w", err)
	}
	return enc.Close()
}

// WriteStudentsCSV writes the class list, one student per row.
func WriteStudentsCSV(r *roster.Roster, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"student_no", "full_name", "section", "course_code"}); err != nil {
		return err
	}
	for _, s := range r.Students {
		if err := cw.Write([]string{s.StudentNo, s.FullName, r.Section, r.CourseCode}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Formats lists the output formats Write understands.
var Formats = []string{"ics", "json", "yaml", "csv"}

// Write dispatches on format. ICS needs a term; the other formats ignore it.
func Write(format string, r *roster.Roster, term Term, w io.Writer) error {
	switch format {
	case "ics":
		return GenerateICS(r, term, w)
	case "json":
		return WriteJSON(r, w)
	case "yaml", "yml":
		return WriteYAML(r, w)
	case "csv":
		return WriteStudentsCSV(r, w)
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
}

// WriteFile creates path, along with any missing parent directories, and
// writes the roster to it in the given format.
func WriteFile(path, format string, r *roster.Roster, term Term) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := Write(format, r, term, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return file.Close()
}
