package server

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type CommandKind int

const (
	Invalid CommandKind = iota
	Look
	Dig
	Flag
	Deflag
	Help
	Bye
)

var commandNames = map[string]CommandKind{
	"look":   Look,
	"dig":    Dig,
	"flag":   Flag,
	"deflag": Deflag,
	"help":   Help,
	"bye":    Bye,
}

func (kind CommandKind) String() string {
	for name, k := range commandNames {
		if k == kind {
			return name
		}
	}
	return "invalid"
}

// Command is a single parsed request line. X and Y are only meaningful for
// Dig, Flag and Deflag.
type Command struct {
	Kind CommandKind
	X, Y int
}

func (command Command) String() string {
	switch command.Kind {
	case Dig, Flag, Deflag:
		return fmt.Sprintf("%s %d %d", command.Kind, command.X, command.Y)
	default:
		return command.Kind.String()
	}
}

var commandPattern = regexp.MustCompile(
	`^(?:(look|help|bye)|(dig|flag|deflag) ([+-]?[0-9]+) ([+-]?[0-9]+))$`,
)

// ParseCommand maps a request line to a Command. Anything outside the grammar,
// including coordinates that overflow an int, parses as Invalid.
func ParseCommand(line string) Command {
	match := commandPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if match == nil {
		return Command{Kind: Invalid}
	}

	if match[1] != "" {
		return Command{Kind: commandNames[match[1]]}
	}

	x, err := strconv.Atoi(match[3])
	if err != nil {
		return Command{Kind: Invalid}
	}
	y, err := strconv.Atoi(match[4])
	if err != nil {
		return Command{Kind: Invalid}
	}
	return Command{Kind: commandNames[match[2]], X: x, Y: y}
}
