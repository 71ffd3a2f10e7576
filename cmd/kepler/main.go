package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhenakh/kepler/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "kepler:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
