// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/acidbase/internal/logging"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	v   *viper.Viper
	log logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "acidbase",
		Short:         "Acid–base equilibrium calculator",
		Long:          `acidbase computes the pH of n-protic acid solutions, titration curves, species distributions and buffer capacity.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Config file (YAML); defaults to ./acidbase.yaml if present")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newPHCmd(a),
		newSpeciesCmd(a),
		newBetaCmd(a),
		newTitrateCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration (file, then ACIDBASE_* environment, then flags)
// and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("ACIDBASE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("acidbase")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	l, err := logging.New(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log = l
	a.log.V(1).Info("configuration loaded", "file", a.v.ConfigFileUsed())
	return nil
}

// bindFlags binds every local flag of cmd to "<prefix>.<flag>" in viper.
func (a *app) bindFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = a.v.BindPFlag(prefix+"."+f.Name, f)
	})
}
