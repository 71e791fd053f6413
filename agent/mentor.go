package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Mentor runs the interactive session: a small REPL over one Session.
type Mentor struct {
	w       io.Writer
	r       *bufio.Reader
	render  func(string) string
	session *Session
}

// NewMentor creates a mentor REPL. render formats a reply before printing,
// pass nil to print raw text.
func NewMentor(w io.Writer, r io.Reader, render func(string) string) *Mentor {
	if render == nil {
		render = func(s string) string { return s }
	}
	return &Mentor{w: w, r: bufio.NewReader(r), render: render}
}

const prompt = "mentor> "

// Run starts the REPL. Any prompts given up front are consumed before
// reading from the user, so a one-shot question can be passed on the
// command line. 'bye' ends the session, 'reset' clears the history.
func (m *Mentor) Run(ctx context.Context, client *genai.Client, instruction string, prompts ...string) error {
	session, err := NewSession(ctx, client, instruction)
	if err != nil {
		return err
	}
	m.session = session

	fmt.Fprintln(m.w, "Family investment mentor. Type 'bye' to exit, 'reset' to start over.")

	for {
		fmt.Fprint(m.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(m.w, input)
		} else {
			var err error
			input, err = m.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		switch strings.TrimSpace(input) {
		case "":
			continue
		case "bye":
			return nil
		case "reset":
			if err := m.session.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(m.w, "(history cleared)")
			continue
		}

		reply, err := m.session.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.w, m.render(reply))
	}
}
