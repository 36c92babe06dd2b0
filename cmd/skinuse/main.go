// Command skinuse reports which skin elements a mapset uses.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/skinuse/internal/cli"
	"github.com/roach88/skinuse/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
