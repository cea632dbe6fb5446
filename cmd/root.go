package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ptdat/prodomo/internal/notify"
	"github.com/ptdat/prodomo/internal/reminder"
	"github.com/ptdat/prodomo/internal/store"
	"github.com/ptdat/prodomo/internal/tui"
	"github.com/ptdat/prodomo/internal/weather"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prodomo",
		Short: "Personal ambient dashboard with a pomodoro timer",
		Long: `prodomo is a terminal dashboard: clock, weather, lunar calendar,
daily focus note and bookmarks, with a pomodoro timer, task deadlines
and focus statistics built in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	cmd.PersistentFlags().String("db", "", "path to the database file")
	cmd.PersistentFlags().Float64("latitude", 0, "override latitude for weather")
	cmd.PersistentFlags().Float64("longitude", 0, "override longitude for weather")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig layers viper config under the flags: flag > config file >
// built-in default.
func initConfig(cmd *cobra.Command) error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "prodomo"))
	}
	viper.SetEnvPrefix("PRODOMO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	for _, name := range []string{"db", "latitude", "longitude"} {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func dbPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	return store.New(path)
}

func runTUI() error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	applyCoordOverrides(s)

	if theme, err := s.GetSetting("theme"); err == nil {
		tui.ApplyTheme(theme)
	}

	sched := reminder.NewScheduler()
	defer sched.Shutdown()

	app := tui.New(s, weather.NewClient(), sched, notify.NewDesktop())
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// applyCoordOverrides writes flag/config coordinates through to settings so
// the dashboard and future runs pick them up.
func applyCoordOverrides(s *store.Store) {
	if viper.IsSet("latitude") && viper.GetFloat64("latitude") != 0 {
		s.SetSetting("latitude", fmt.Sprintf("%g", viper.GetFloat64("latitude")))
	}
	if viper.IsSet("longitude") && viper.GetFloat64("longitude") != 0 {
		s.SetSetting("longitude", fmt.Sprintf("%g", viper.GetFloat64("longitude")))
	}
}
