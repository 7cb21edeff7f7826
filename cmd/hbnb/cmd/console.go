package cmd

import (
	"os"

	"github.com/materials-commons/hbnb/pkg/console"
	"github.com/spf13/cobra"
)

// consoleCommand wraps a single console command so that, for example,
// "hbnb show User 1234" behaves like typing "show User 1234" at the prompt.
func consoleCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [args...]",
		Short: "Run the console " + name + " command once",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			console.NewConsole(store, os.Stdout).Exec(name, args)
		},
	}
}
