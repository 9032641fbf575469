package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rosterctl/pkg/config"
	"rosterctl/pkg/exporter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Term (Start Date, Weeks, Timezone)", "term"),
						huh.NewOption("Set Output Defaults", "output"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "term":
			err = runSetTermTUI(cfg)
		case "output":
			err = runSetOutputTUI(cfg)
		case "view":
			fmt.Println(describeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

func describeConfig(cfg *config.AppConfig) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("\n--- Current Configuration (~/.rosterctl.json) ---") + "\n")

	orDefault := func(v, def string) string {
		if v == "" {
			return mutedStyle.Render(def + " (default)")
		}
		return v
	}

	fmt.Fprintf(&b, "Term Start: %s\n", orDefault(cfg.TermStart, "Monday of the current week"))
	fmt.Fprintf(&b, "Term Weeks: %d\n", cfg.Weeks())
	fmt.Fprintf(&b, "Timezone: %s\n", orDefault(cfg.Timezone, config.DefaultTimezone))
	fmt.Fprintf(&b, "Output Dir: %s\n", orDefault(cfg.OutputDir, "current directory"))
	fmt.Fprintf(&b, "Default Format: %s\n", orDefault(cfg.DefaultFormat, "ics"))
	fmt.Fprintf(&b, "Accent Color: %s\n", orDefault(cfg.AccentColor, defaultAccent))
	return b.String()
}

func runSetTermTUI(cfg *config.AppConfig) error {
	start := cfg.TermStart
	weeks := strconv.Itoa(cfg.Weeks())
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = config.DefaultTimezone
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day of classes").
				Description("YYYY-MM-DD. Leave empty to use the current week.").
				Placeholder("2025-08-11").
				Value(&start).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("use the YYYY-MM-DD format")
					}
					return nil
				}),
			huh.NewInput().
				Title("Weeks in the term").
				Value(&weeks).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Timezone").
				Value(&timezone).
				Validate(func(s string) error {
					if _, err := time.LoadLocation(s); err != nil {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.TermStart = start
	cfg.TermWeeks, _ = strconv.Atoi(weeks)
	cfg.Timezone = timezone
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Term saved: %d weeks in %s\n", cfg.TermWeeks, cfg.Timezone)))
	return nil
}

func runSetOutputTUI(cfg *config.AppConfig) error {
	dir := cfg.OutputDir
	format := cfg.DefaultFormat
	if format == "" {
		format = "ics"
	}

	formatOptions := make([]huh.Option[string], len(exporter.Formats))
	for i, f := range exporter.Formats {
		formatOptions[i] = huh.NewOption(strings.ToUpper(f), f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Description("Exports are written here. Leave empty for the current directory.").
				Placeholder("~/rosters").
				Value(&dir),
			huh.NewSelect[string]().
				Title("Default export format").
				Options(formatOptions...).
				Value(&format),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputDir = strings.TrimSpace(dir)
	cfg.DefaultFormat = format
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Output defaults saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for rosterctl").
				Description("Select a preset or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Registrar Blue", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Maroon", colorBlock("124")), "124"),
					huh.NewOption(fmt.Sprintf("%s Gold", colorBlock("220")), "220"),
					huh.NewOption(fmt.Sprintf("%s Forest Green", colorBlock("28")), "28"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

func validateHex(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
