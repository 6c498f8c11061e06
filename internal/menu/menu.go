// Package menu runs the interactive campus navigation menu over a pair of
// text streams.
//
// The loop is line oriented so it can be scripted: every prompt reads one
// line, and end of input ends the session the same way choosing Exit does.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/campusnav/navigator"
)

// Menu choices as typed by the user.
const (
	ChoiceShowNodes = "1"
	ChoiceRoute     = "2"
	ChoiceReachable = "3"
	ChoiceExit      = "4"
)

// Menu is one interactive session.
type Menu struct {
	nav   *navigator.Navigator
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger
	style styles
}

// New binds a session to a navigator and its input and output streams.
// A nil logger discards.
func New(nav *navigator.Navigator, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Menu{
		nav:   nav,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
		style: newStyles(out),
	}
}

// errEndOfInput stops the loop when the input stream runs dry.
var errEndOfInput = errors.New("menu: end of input")

// Run loops until the user exits, input ends or ctx is cancelled.
// End of input is a normal exit and returns nil.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()

		choice, err := m.readLine()
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case ChoiceShowNodes:
			m.showNodes()
		case ChoiceRoute:
			err = m.findRoute()
		case ChoiceReachable:
			err = m.showReachable()
		case ChoiceExit:
			m.println(m.style.Muted.Render("Exiting..."))
			return nil
		default:
			m.log.Debug("invalid menu choice", slog.String("choice", choice))
			m.println(m.style.Warning.Render("Invalid choice."))
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		m.println("")
		m.println(m.style.Muted.Render("Exiting..."))
		return nil
	}

	return err
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(m.style.Title.Render("--- Campus Navigation System ---"))
	m.println(m.style.Option.Render("1. Show all nodes"))
	m.println(m.style.Option.Render("2. Find shortest path"))
	m.println(m.style.Option.Render("3. Show reachable places"))
	m.println(m.style.Option.Render("4. Exit"))
	m.prompt("Choose an option: ")
}

func (m *Menu) showNodes() {
	m.println("")
	m.println(m.style.Title.Render("Available Nodes:"))
	fmt.Fprint(m.out, navigator.FormatNodes(m.nav.Nodes()))
}

func (m *Menu) findRoute() error {
	m.prompt("Enter source node ID: ")
	from, err := m.readLine()
	if err != nil {
		return err
	}
	m.prompt("Enter destination node ID: ")
	to, err := m.readLine()
	if err != nil {
		return err
	}

	res, err := m.nav.Route(from, to)
	switch {
	case errors.Is(err, navigator.ErrInvalidNodeID):
		m.println(m.style.Error.Render("Invalid node IDs. Try again."))
		return nil
	case err != nil:
		m.println(m.style.Error.Render("Error: " + err.Error()))
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(m.nav.FormatResult(res), "\n"), "\n")
	if !res.Found() {
		m.println(m.style.Warning.Render(lines[0]))
		return nil
	}
	m.println(lines[0])
	m.println(m.style.Path.Render(lines[1]))
	m.println(lines[2])

	return nil
}

func (m *Menu) showReachable() error {
	m.prompt("Enter start node ID: ")
	from, err := m.readLine()
	if err != nil {
		return err
	}

	places, err := m.nav.Reachable(from)
	if errors.Is(err, navigator.ErrInvalidNodeID) {
		m.println(m.style.Error.Render("Invalid node ID. Try again."))
		return nil
	}
	if err != nil {
		return err
	}

	start, _ := m.nav.Node(from)
	if len(places) == 0 {
		m.println(m.style.Warning.Render(fmt.Sprintf("No places reachable from %s.", start.Label)))
		return nil
	}
	m.println(fmt.Sprintf("Reachable from %s (%d):", start.Label, len(places)))
	fmt.Fprint(m.out, navigator.FormatNodes(places))

	return nil
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("menu: read input: %w", err)
		}
		return "", errEndOfInput
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) prompt(s string) {
	fmt.Fprint(m.out, m.style.Prompt.Render(s))
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
