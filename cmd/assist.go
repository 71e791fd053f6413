package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/jdhyun/famfolio"
	"github.com/jdhyun/famfolio/agent"
)

// assistCmd is the subcommand for the AI mentor.
type assistCmd struct {
	brief bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the investment mentor about the portfolio" }
func (*assistCmd) Usage() string {
	return `assist [-brief] [initial question...]

  Starts an interactive session with the investment mentor, grounded on the
  current portfolio snapshot. -brief opens with the canned morning-brief
  question. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.brief, "brief", false, "Open with the canned morning-brief question")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if c.brief {
		prompts = append(prompts, agent.MarketBriefPrompt)
	}
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	snap, err := takeSnapshot(famfolio.Filter{})
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	mentor := agent.NewMentor(os.Stdout, os.Stdin, func(md string) string {
		out, err := renderMarkdown(md)
		if err != nil {
			return md
		}
		return out
	})
	if err := mentor.Run(ctx, client, agent.MentorPrompt(snap.Markdown()), prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Mentor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
