// Command fam manages a family's investment ledger: buys, deposits and
// recurring plans in, summaries, history and mentor advice out.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jdhyun/famfolio/cmd"
)

func main() {
	// GEMINI_API_KEY usually lives in a local .env file.
	godotenv.Load()

	// Shell completion, active when invoked by the completion hooks.
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"buy":       {},
			"sell":      {},
			"deposit":   {},
			"tx":        {},
			"fmt":       {},
			"summary":   {},
			"holdings":  {},
			"history":   {},
			"recurring": {},
			"scan":      {},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
	}).Complete("fam")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
