package command

import (
	"log/slog"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	config     *Config
}

// NewRootCmd builds the adventure command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "adventure",
		Short: "Inspect adventure worlds and save files",
		Long:  `Adventure loads world definitions and save files, checks them for problems and prints what they contain.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newMapCmd(opts))
	rootCmd.AddCommand(newSaveInfoCmd(opts))

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.config = cfg

	lvl, _ := cfg.Level()
	if o.verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))

	return nil
}

func (o *rootOptions) loadWorld(path string) (*game.World, error) {
	return game.LoadWorld(path, game.WithPlayerConfig(o.config.Player))
}
