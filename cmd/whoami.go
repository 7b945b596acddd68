package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the current session identity" }
func (*whoamiCmd) Usage() string {
	return `mon whoami

  Prints the signed-in identity, if any.
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	if !p.IsLoggedIn {
		fmt.Println("Not logged in")
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s <%s> (id %s)\n", p.Name, p.Email, p.ID)
	return subcommands.ExitSuccess
}
