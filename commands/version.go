package commands

// overridden at build time with -ldflags "-X github.com/devscope/devscope/commands.version=..."
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	say("devscope version", version)
	return nil
}
