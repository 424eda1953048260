package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/config"
)

var hashPassphraseCmd = &cobra.Command{
	Use:   "hash-passphrase <passphrase>",
	Short: "Hash a reviewer passphrase for REVIEWER_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassphrase,
}

func init() {
	rootCmd.AddCommand(hashPassphraseCmd)
}

func runHashPassphrase(cmd *cobra.Command, args []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	hash, err := passwordConfig.HashPassphrase(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
