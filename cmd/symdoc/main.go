package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/symdoc/cmd/symdoc/commands"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("symdoc"),
		kong.Description("Render a C++ symbol index as a static HTML documentation site."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	if err := parser.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
