// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/labyrinth/maze"
)

var (
	// ErrInputClosed is returned when input ends before a prompt is answered.
	ErrInputClosed = errors.New("cli: input closed")

	errWrongFormat = errors.New("Try again! Wrong number format!")
	errCoordArity  = errors.New("Write both coordinates as: row col")
)

// rangeError reports a number outside [min, max]; field prefixes the message.
type rangeError struct {
	field    string
	min, max int
}

func (e *rangeError) Error() string {
	msg := fmt.Sprintf("Must be in range [%d, %d]", e.min, e.max)
	if e.field != "" {
		return e.field + ": " + msg
	}
	return msg
}

// parseNumber parses s and checks it against [min, max].
func parseNumber(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errWrongFormat
	}
	if n < min || n > max {
		return 0, &rangeError{min: min, max: max}
	}
	return n, nil
}

// parseCoordinate reads "row col" or "row,col".
func parseCoordinate(s string) (maze.Coordinate, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(fields) != 2 {
		return maze.Coordinate{}, errCoordArity
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return maze.Coordinate{}, errWrongFormat
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return maze.Coordinate{}, errWrongFormat
	}
	return maze.At(row, col), nil
}

// prompter asks questions on out and reads one answer per line from in.
// Invalid answers print the reason and ask again.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ask prints question (via show) until accept takes the answer.
func (p *prompter) ask(show func(), accept func(string) error) error {
	for {
		show()
		line, err := p.readLine()
		if err != nil {
			return err
		}
		if err := accept(line); err != nil {
			printError(p.out, err.Error())
			continue
		}
		return nil
	}
}

// choose lists names as a 1-based menu and returns the picked 0-based index.
func (p *prompter) choose(question string, names []string) (int, error) {
	var idx int
	err := p.ask(func() {
		fmt.Fprintln(p.out, question)
		for i, name := range names {
			printChoice(p.out, i+1, name)
		}
	}, func(line string) error {
		n, err := parseNumber(line, 1, len(names))
		idx = n - 1
		return err
	})
	if err != nil {
		return 0, err
	}
	printSuccess(p.out, "You choose %s", names[idx])
	return idx, nil
}

func (p *prompter) yesNo(question string) (bool, error) {
	idx, err := p.choose(question, []string{"Yes", "No"})
	return idx == 0, err
}

// number asks for an integer in [min, max].
func (p *prompter) number(question string, min, max int) (int, error) {
	var n int
	err := p.ask(func() { fmt.Fprintln(p.out, question) }, func(line string) (err error) {
		n, err = parseNumber(line, min, max)
		return err
	})
	if err != nil {
		return 0, err
	}
	printSuccess(p.out, "You choose %d", n)
	return n, nil
}

// coordinate asks for a cell inside a height×width grid.
func (p *prompter) coordinate(question string, height, width int) (maze.Coordinate, error) {
	var c maze.Coordinate
	err := p.ask(func() { fmt.Fprintln(p.out, question) }, func(line string) error {
		got, err := parseCoordinate(line)
		if err != nil {
			return err
		}
		if got.Row < 0 || got.Row >= height {
			return &rangeError{field: "Row", min: 0, max: height - 1}
		}
		if got.Col < 0 || got.Col >= width {
			return &rangeError{field: "Col", min: 0, max: width - 1}
		}
		c = got
		return nil
	})
	return c, err
}
