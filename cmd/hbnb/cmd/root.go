package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/config"
	"github.com/materials-commons/hbnb/pkg/console"
	"github.com/materials-commons/hbnb/pkg/hbnbdb"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/stor"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const keyDotenvPath = "HBNB_DOTENV_PATH"

var (
	v     = viper.New()
	store stor.Stor
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hbnb",
	Short: "Command console for the hbnb object store",
	Long: `Command console for the hbnb object store. Without a subcommand it reads
console commands from standard input until quit or end of input.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		store = mustOpenStor()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := store.Close(); err != nil {
			log.Errorf("Closing storage failed: %s", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		c := console.NewConsole(store, os.Stdout)
		interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		if err := c.Run(os.Stdin, interactive); err != nil {
			log.Fatalf("Reading commands failed: %s", err)
		}
	},
}

func mustOpenStor() stor.Stor {
	c := config.NewViperConfig(v, v.GetString(keyDotenvPath))
	if err := c.Load(); err != nil {
		log.Fatalf("Unable to load %s: %s", c.DotenvPath, err)
	}

	if err := clog.Configure(c); err != nil {
		log.Fatalf("Bad logging configuration: %s", err)
	}

	cfg, err := hbnbdb.LoadStorageConfig(c)
	if err != nil {
		log.Fatalf("Bad storage configuration: %s", err)
	}

	s, err := stor.Open(cfg)
	if err != nil {
		log.Fatalf("Unable to open %s storage: %s", cfg.Type, err)
	}

	clog.Global().WithField("type", cfg.Type).Debugf("storage opened")
	return s
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("storage", "", "storage backend: file or db")
	flags.String("file-path", "", "path of the JSON document for file storage")
	flags.String("log-level", "", "log level for every logging context")
	flags.String("log-file", "", "append log output to this file instead of stderr")
	flags.String("env-file", "", "dotenv file loaded before reading the environment")

	_ = v.BindPFlag(hbnbdb.KeyStorageType, flags.Lookup("storage"))
	_ = v.BindPFlag(hbnbdb.KeyFilePath, flags.Lookup("file-path"))
	_ = v.BindPFlag(clog.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(clog.KeyLogFile, flags.Lookup("log-file"))
	_ = v.BindPFlag(keyDotenvPath, flags.Lookup("env-file"))
	v.AutomaticEnv()

	for _, name := range []string{"create", "show", "destroy", "all", "count", "update"} {
		rootCmd.AddCommand(consoleCommand(name))
	}
}
