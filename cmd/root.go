package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/config"
	"github.com/princinho/menufront/logger"
	"github.com/princinho/menufront/session"
)

var (
	cfgFile   string
	cfg       *config.Config
	appLogger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "menufront",
	Short: "Restaurant menu frontend and admin client",
	Long: `menufront serves the restaurant menu and its admin pages on top of the menu REST backend.
The admin commands talk to the same backend from a terminal, keeping the login token in a local session file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		appLogger, err = logger.New(cfg.Logger, cfg.IsDevelopment())
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLogger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.menufront.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "backend base URL")
	rootCmd.PersistentFlags().String("session-file", "", "where the CLI keeps its login token")

	_ = viper.BindPFlag("backend.base_url", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("session.file", rootCmd.PersistentFlags().Lookup("session-file"))

	rootCmd.AddCommand(serveCmd, loginCmd, logoutCmd, menuCmd, categoriesCmd, productsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".menufront")
}

// newClient talks to the backend with the token kept in the session file.
func newClient() *api.Client {
	store := session.NewFileStore(cfg.Session.File)
	return api.New(cfg.Backend.BaseURL, store,
		api.WithTimeout(cfg.Backend.RequestTimeout),
		api.WithLogger(appLogger))
}

// explain adds a hint to errors the user can act on.
func explain(err error) error {
	if err == nil {
		return nil
	}
	if api.IsAuth(err) {
		return fmt.Errorf("%w: run `menufront login` first", err)
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
