/*
Msigtool is an offline companion of the multisig extension.

It computes action fingerprints, so that signers can verify what they are
about to sign without access to a node, and it dry-runs genesis files
against an in-memory store.

Every flag can also be set through a MSIGTOOL_ prefixed environment variable
or a configuration file given with --config.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const envPrefix = "MSIGTOOL"

// gitHash is set during the compilation time.
var gitHash = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "msigtool",
		Short:        "Offline tooling for the multisig extension",
		Version:      gitHash,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			path := v.GetString("config")
			if path == "" {
				return nil
			}
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %q: %w", path, err)
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().String("config", "", "Configuration file (json, yaml or toml).")
	root.PersistentFlags().String("log-level", "error", "Log level: debug, info or error.")
	root.PersistentFlags().StringP("output", "o", "text", "Output format: text or json.")

	root.AddCommand(
		newHashCmd(v),
		newGenesisCmd(v),
	)
	return root
}

// newLogger returns a logger writing to the command error stream, filtered
// by the configured level.
func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	level, err := log.AllowLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	return log.NewFilter(logger, level).With("module", "msigtool"), nil
}

func outputFormat(v *viper.Viper) (string, error) {
	switch f := v.GetString("output"); f {
	case "text", "json":
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}
