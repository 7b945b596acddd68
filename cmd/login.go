package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type loginCmd struct {
	name  string
	email string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "start a session" }
func (*loginCmd) Usage() string {
	return `mon login -name <name> -email <email>

  Records the signed-in identity in the profile file. There is no remote
  authentication: the identity is declared, not verified.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the user.")
	f.StringVar(&c.email, "email", "", "Email of the user.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -email are required")
		return subcommands.ExitUsageError
	}

	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Name, p.Email, p.IsLoggedIn = c.name, c.email, true

	if err := SaveProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logged in as %s <%s>\n", p.Name, p.Email)
	return subcommands.ExitSuccess
}
