package tui

import (
	"errors"

	"rosterctl/pkg/roster"

	"github.com/charmbracelet/huh/spinner"
)

// ErrParseInterrupted means the spinner exited before parsing finished.
var ErrParseInterrupted = errors.New("parsing was interrupted")

// ParseWithSpinner runs parse behind a spinner. It never returns a nil
// roster together with a nil error.
func ParseWithSpinner(title string, parse func() (*roster.Roster, error)) (*roster.Roster, error) {
	var (
		r   *roster.Roster
		err error
	)

	runErr := spinner.New().
		Title(title).
		Action(func() {
			r, err = parse()
		}).
		Run()

	return settleParse(r, err, runErr)
}

func settleParse(r *roster.Roster, err, runErr error) (*roster.Roster, error) {
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}
	if r == nil {
		return nil, ErrParseInterrupted
	}
	return r, nil
}
