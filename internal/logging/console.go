package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Console is the three-channel output the debug logger writes to.
type Console interface {
	Log(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// TerminalConsole writes standard output to out and warnings and errors,
// colored, to errOut.
type TerminalConsole struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	warn   *color.Color
	fail   *color.Color
}

// NewTerminalConsole builds a console over the given writers. Nil writers discard.
func NewTerminalConsole(out, errOut io.Writer) *TerminalConsole {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &TerminalConsole{
		out:    out,
		errOut: errOut,
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
	}
}

func (c *TerminalConsole) Log(args ...any) {
	c.write(c.out, nil, args)
}

func (c *TerminalConsole) Warn(args ...any) {
	c.write(c.errOut, c.warn, args)
}

func (c *TerminalConsole) Error(args ...any) {
	c.write(c.errOut, c.fail, args)
}

func (c *TerminalConsole) write(w io.Writer, style *color.Color, args []any) {
	line := JoinArgs(args)
	if style != nil {
		line = style.Sprint(line)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(w, line)
}

// LoggerConsole routes console channels to a printf-style Logger:
// standard output to Info, warnings to Warn and errors to Error.
type LoggerConsole struct {
	Logger Logger
}

func (c LoggerConsole) Log(args ...any) {
	OrNop(c.Logger).Info("%s", JoinArgs(args))
}

func (c LoggerConsole) Warn(args ...any) {
	OrNop(c.Logger).Warn("%s", JoinArgs(args))
}

func (c LoggerConsole) Error(args ...any) {
	OrNop(c.Logger).Error("%s", JoinArgs(args))
}

// JoinArgs renders arguments separated by single spaces.
func JoinArgs(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
