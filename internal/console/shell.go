// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/holomush/holoauth/internal/observability"
)

const (
	defaultPrompt = "> "
	msgGoodbye    = "Goodbye."
	msgUnknown    = "Unknown command. Try 'help'."
)

const helpText = `Commands:
  register <username> <password>  create an account
  login <username> <password>     authenticate and receive a token
  whoami [token]                  show the user behind a token (default: current)
  logout                          forget the current token
  help                            show this help
  quit | exit                     leave the shell`

// usage lines by command, shown when the argument count is wrong.
var usage = map[string]string{
	"register": "register <username> <password>",
	"login":    "login <username> <password>",
	"whoami":   "whoami [token]",
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithPrompt sets the prompt written before each line is read.
// An empty prompt disables prompting.
func WithPrompt(prompt string) ShellOption {
	return func(s *Shell) { s.prompt = prompt }
}

// Shell is a line-oriented front end. It remembers the token from the last
// successful login; logout only forgets it locally.
//
// Arguments are split on whitespace, so usernames and passwords containing
// spaces cannot be entered.
type Shell struct {
	ctrl   *Controller
	in     io.Reader
	out    io.Writer
	prompt string
	token  string
}

// NewShell creates a Shell reading commands from in and writing replies to out.
func NewShell(ctrl *Controller, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		ctrl:   ctrl,
		in:     in,
		out:    out,
		prompt: defaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands until EOF, quit, or ctx is cancelled. It returns
// an error only when reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	s.writePrompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return oops.Code("SHELL_READ_FAILED").Wrap(err)
				default:
					return nil
				}
			}
			reply, quit := s.Exec(line)
			if reply != "" {
				s.write(commandName(line), reply+"\n")
			}
			if quit {
				return nil
			}
			s.writePrompt()
		}
	}
}

// Exec runs a single command line and returns the reply and whether the
// shell should exit.
func (s *Shell) Exec(line string) (reply string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "register":
		if len(args) != 2 {
			return "Usage: " + usage[cmd], false
		}
		if _, err := s.ctrl.Register(args[0], args[1]); err != nil {
			return UserMessage(err), false
		}
		return MsgRegistered, false

	case "login":
		if len(args) != 2 {
			return "Usage: " + usage[cmd], false
		}
		token, err := s.ctrl.Login(args[0], args[1])
		if err != nil {
			return UserMessage(err), false
		}
		s.token = token
		return MsgAuthenticated + token, false

	case "whoami":
		if len(args) > 1 {
			return "Usage: " + usage[cmd], false
		}
		token := s.token
		if len(args) == 1 {
			token = args[0]
		}
		return s.whoami(token), false

	case "logout":
		if s.token == "" {
			return MsgNotAuthenticated, false
		}
		s.token = ""
		return MsgLoggedOut, false

	case "help":
		return helpText, false

	case "quit", "exit":
		return msgGoodbye, true

	default:
		return msgUnknown, false
	}
}

// Token returns the token remembered from the last successful login.
func (s *Shell) Token() string {
	return s.token
}

func (s *Shell) whoami(token string) string {
	if token == "" {
		return MsgNotAuthenticated
	}
	user, ok := s.ctrl.Whoami(token)
	if !ok {
		return MsgNotAuthenticated
	}
	out, err := yaml.Marshal(user.Public())
	if err != nil {
		return MsgGeneric
	}
	return strings.TrimRight(string(out), "\n")
}

func (s *Shell) writePrompt() {
	if s.prompt != "" {
		s.write("prompt", s.prompt)
	}
}

func (s *Shell) write(command, text string) {
	if _, err := fmt.Fprint(s.out, text); err != nil {
		observability.RecordOutputFailure(command)
		s.ctrl.logger.Warn("shell output failed", "command", command, "error", err)
	}
}

// commandName returns a bounded label for line's command.
func commandName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "empty"
	}
	switch name := strings.ToLower(fields[0]); name {
	case "register", "login", "whoami", "logout", "help", "quit", "exit":
		return name
	default:
		return "unknown"
	}
}
