package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/store"
	"github.com/zkelabs/quorum/x/multisig"
	"github.com/zkelabs/quorum/x/nft"
	"github.com/zkelabs/quorum/x/token"
)

func newGenesisCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "genesis <file>",
		Short: "Validate a genesis file",
		Long: `Load a genesis file into an in-memory store and print the resulting
multisig governance.

The file is either a full genesis document with an "app_state" field or the
application state alone. The multisig section, with its optional entry in
conf, is loaded first, followed by the token and nft sections.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenesis(cmd, v, args[0])
		},
	}
}

type genesisOutput struct {
	Signers           []quorum.Address `json:"signers"`
	MinAuthorizations uint64           `json:"min_authorizations"`
	TimelockSeconds   int64            `json:"timelock_seconds"`
	MaxSigners        uint32           `json:"max_signers"`
}

func runGenesis(cmd *cobra.Command, v *viper.Viper, path string) error {
	format, err := outputFormat(v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, v)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	opts, err := appState(raw)
	if err != nil {
		return fmt.Errorf("genesis %q: %w", path, err)
	}

	db := store.MemStore()
	init := quorum.ChainInitializers(
		&multisig.Initializer{},
		&token.Initializer{},
		&nft.Initializer{},
	)
	if err := init.FromGenesis(opts, db); err != nil {
		return fmt.Errorf("genesis %q: %w", path, err)
	}
	logger.Info("genesis loaded", "file", path, "sections", len(opts))

	registry := multisig.NewSignerRegistry()
	signers, err := registry.Signers(db)
	if err != nil {
		return err
	}
	threshold, err := registry.MinAuthorizations(db)
	if err != nil {
		return err
	}
	conf, err := multisig.LoadConfiguration(db)
	if err != nil {
		return err
	}
	out := genesisOutput{
		Signers:           signers,
		MinAuthorizations: threshold,
		TimelockSeconds:   conf.TimelockSeconds,
		MaxSigners:        conf.MaxSigners,
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "min authorizations\t%d of %d\n", out.MinAuthorizations, len(out.Signers))
	fmt.Fprintf(tw, "timelock seconds\t%d\n", out.TimelockSeconds)
	fmt.Fprintf(tw, "max signers\t%d\n", out.MaxSigners)
	for i, s := range out.Signers {
		fmt.Fprintf(tw, "signer #%d\t%s\n", i, s)
	}
	return tw.Flush()
}

// appState returns the application state of a genesis document. A document
// without an app_state field is the application state itself.
func appState(raw []byte) (quorum.Options, error) {
	var doc struct {
		AppState quorum.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.AppState != nil {
		return doc.AppState, nil
	}
	var opts quorum.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
