package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rosterctl/pkg/config"
	"rosterctl/pkg/exporter"
	"rosterctl/pkg/roster"
	"rosterctl/pkg/source"

	"github.com/charmbracelet/huh"
)

// reviewEdits holds what the reviewer changed before committing
type reviewEdits struct {
	Section     string
	FacultyName string
	YearLevel   string
	// Keep lists the indexes of students to keep, as strings for huh
	Keep []string
}

// applyReview returns a copy of r with the reviewer's edits applied. The
// department is derived again when the section changes.
func applyReview(r *roster.Roster, e reviewEdits) *roster.Roster {
	out := *r

	section := roster.NormalizeSection(e.Section)
	if section == "" {
		section = roster.UnknownSection
	}
	if section != r.Section {
		out.Section = section
		if section == roster.UnknownSection {
			out.Department = roster.DepartmentOf("", r.CourseCode)
		} else {
			out.Department = roster.DepartmentOf(section, r.CourseCode)
		}
	}
	out.FacultyName = strings.TrimSpace(e.FacultyName)
	out.YearLevel = strings.TrimSpace(e.YearLevel)

	keep := make(map[string]bool, len(e.Keep))
	for _, k := range e.Keep {
		keep[k] = true
	}
	out.Students = make([]roster.Student, 0, len(e.Keep))
	for i, s := range r.Students {
		if keep[fmt.Sprint(i)] {
			out.Students = append(out.Students, s)
		}
	}
	out.Schedules = append([]roster.Schedule(nil), r.Schedules...)

	return &out
}

func validateSection(s string) error {
	s = roster.NormalizeSection(s)
	if s == "" || s == roster.UnknownSection || roster.ValidSection(s) {
		return nil
	}
	return fmt.Errorf("%q is not a section code like BSIT4D", s)
}

// RunReviewTUI parses an export, shows the result and lets the user fix it
// up before it is written out. An empty ref prompts for one.
func RunReviewTUI(ref string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if ref == "" {
		refForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Path or URL of the class list export").
					Placeholder("e.g. ~/Downloads/IT413-BSIT4D.csv").
					Value(&ref).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("a path or URL is required")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := refForm.Run(); err != nil {
			return err
		}
		ref = expandHome(strings.TrimSpace(ref))
	}

	client := source.NewClient()
	parsed, err := ParseWithSpinner(fmt.Sprintf("Reading %s...", filepath.Base(ref)), func() (*roster.Roster, error) {
		return client.Parse(context.Background(), ref, true)
	})

	if errors.Is(err, roster.ErrUnrecognized) {
		fmt.Println(errorStyle.Render("Could not find a course code, subject title and class list in this export."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(RenderRoster(parsed))

	edits := reviewEdits{
		Section:     parsed.Section,
		FacultyName: parsed.FacultyName,
		YearLevel:   parsed.YearLevel,
	}

	var studentOptions []huh.Option[string]
	for i, s := range parsed.Students {
		label := s.FullName
		if s.StudentNo != "" {
			label = fmt.Sprintf("%s  %s", s.StudentNo, s.FullName)
		}
		studentOptions = append(studentOptions, huh.NewOption(label, fmt.Sprint(i)).Selected(true))
	}

	format := cfg.DefaultFormat
	if format == "" {
		format = "ics"
	}
	outputFile := defaultOutputName(parsed, cfg.OutputDir, format)
	var commit bool

	formatOptions := make([]huh.Option[string], len(exporter.Formats))
	for i, f := range exporter.Formats {
		formatOptions[i] = huh.NewOption(strings.ToUpper(f), f)
	}

	reviewForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Section").
				Description("Normalized on save, e.g. BSIT-4D becomes BSIT4D").
				Value(&edits.Section).
				Validate(validateSection),
			huh.NewInput().
				Title("Faculty").
				Value(&edits.FacultyName),
			huh.NewInput().
				Title("Year Level").
				Value(&edits.YearLevel),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Students to keep").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(studentOptions...).
				Value(&edits.Keep).
				Filterable(true).
				Height(14).
				Validate(func(keep []string) error {
					if len(keep) == 0 {
						return fmt.Errorf("keep at least one student")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(&format),
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Commit this roster?").
				Affirmative("Save").
				Negative("Discard").
				Value(&commit),
		),
	).WithTheme(GetTheme())

	if err := reviewForm.Run(); err != nil {
		return err
	}

	if !commit {
		fmt.Println(mutedStyle.Render("Discarded, nothing was written."))
		return nil
	}

	reviewed := applyReview(parsed, edits)

	term, err := termFromConfig(cfg)
	if err != nil {
		return err
	}

	if err := exporter.WriteFile(outputFile, format, reviewed, term); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSaved %s (%d students, %d meeting times) to %s",
		reviewed.Section, len(reviewed.Students), len(reviewed.Schedules), outputFile)))
	return nil
}

func termFromConfig(cfg *config.AppConfig) (exporter.Term, error) {
	start, err := cfg.TermStartDate(time.Now())
	if err != nil {
		return exporter.Term{}, err
	}
	return exporter.Term{Start: start, Weeks: cfg.Weeks()}, nil
}

// defaultOutputName builds "IT413-BSIT4D.ics" inside dir.
func defaultOutputName(r *roster.Roster, dir, format string) string {
	name := fmt.Sprintf("%s-%s.%s", r.CourseCode, r.Section, format)
	if dir == "" {
		return name
	}
	return filepath.Join(expandHome(dir), name)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
