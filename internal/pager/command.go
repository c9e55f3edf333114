package pager

import (
	"fmt"
	"strings"
)

// Command is a numbered menu selection.
type Command int

// Menu selections. The numbers are what the user types at the prompt.
const (
	CommandExit Command = 0
	// CommandPrevious is 1 so that each number runs the command printed
	// beside it; 1 never means first page.
	CommandPrevious Command = 1
	CommandNext     Command = 2
	CommandFirst    Command = 3
	CommandLast     Command = 4
)

// menuOrder is the display order of the menu entries.
//
//nolint:gochecknoglobals // Fixed lookup table.
var menuOrder = [menuSize]Command{CommandPrevious, CommandNext, CommandFirst, CommandLast, CommandExit}

const menuSize = 5

// ParseCommand maps a typed number to a Command.
func ParseCommand(n int) (Command, bool) {
	c := Command(n)
	switch c {
	case CommandExit, CommandPrevious, CommandNext, CommandFirst, CommandLast:
		return c, true
	default:
		return 0, false
	}
}

func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandPrevious:
		return "previous"
	case CommandNext:
		return "next"
	case CommandFirst:
		return "first"
	case CommandLast:
		return "last"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Menu holds the labels shown for each command. Labels are cosmetic; the
// numbering and the commands they trigger never change.
type Menu struct {
	labels [menuSize]string
}

// DefaultMenu returns the stock English menu.
func DefaultMenu() Menu {
	return Menu{labels: [menuSize]string{"Previous page", "Next page", "First page", "Last page", "Exit"}}
}

// NewMenu builds a menu from labels given in display order: previous, next,
// first, last, exit.
func NewMenu(labels []string) (Menu, error) {
	if len(labels) != menuSize {
		return Menu{}, fmt.Errorf("%w: got %d", ErrInvalidMenu, len(labels))
	}
	var m Menu
	for i, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			return Menu{}, fmt.Errorf("%w: label %d is empty", ErrInvalidMenu, i+1)
		}
		m.labels[i] = l
	}
	return m, nil
}

// Label returns the label shown for c.
func (m Menu) Label(c Command) string {
	for i, mc := range menuOrder {
		if mc == c {
			return m.labels[i]
		}
	}
	return ""
}

// Render returns the five menu lines followed by the selection prompt.
func (m Menu) Render() string {
	var b strings.Builder
	for _, c := range menuOrder {
		fmt.Fprintf(&b, "%d. %s\n", int(c), m.Label(c))
	}
	b.WriteString(MsgSelect)
	return b.String()
}
