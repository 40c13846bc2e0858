package commands

import (
	"fmt"

	"git.home.luguber.info/inful/symdoc/internal/config"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	return RunInit(root.Config, i.Force)
}

// RunInit writes the example configuration to configPath.
func RunInit(configPath string, force bool) error {
	fmt.Printf("Writing example configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		return ferrors.FileSystemError("cannot write configuration").
			WithCause(err).
			WithContext("config", configPath).
			Build()
	}
	fmt.Println("Edit index and project.name, then run: symdoc render")
	return nil
}
