// Package proc runs external commands to completion with inherited stdio,
// mapping their exit status into descriptive errors.
package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dccsillag/tap/internal/msg"
)

// Command is a single external-process invocation: a program name plus an
// ordered argument list. It is a value and is never mutated after
// construction.
type Command struct {
	Program string
	Args    []string
	Dir     string // working directory; empty means inherit
}

func New(program string, args ...string) Command {
	return Command{Program: program, Args: args}
}

// InDir returns a copy of the command that runs in the given directory.
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the invocation with shell quoting, for trace output and
// error messages.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Program))
	for _, arg := range c.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'$`\\*?[]{}()<>|&;#~") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// Run announces the invocation, spawns the process with inherited standard
// streams and blocks until it exits. It returns nil only for exit status 0;
// every failure is wrapped with the rendered invocation.
func (c Command) Run() error {
	msg.Trace("%s", c)

	if err := c.run(); err != nil {
		return fmt.Errorf("while running command %s: %w", c, err)
	}
	return nil
}

func (c Command) run() error {
	cmd := exec.Command(c.Program, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return fmt.Errorf("process exited with exit code %d", code)
		}
		// no exit code means the process was terminated by a signal
		return errors.New("process was killed")
	}
	return fmt.Errorf("couldn't spawn process: %w", err)
}
