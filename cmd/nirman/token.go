package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"Nirman/internal/auth"
	"Nirman/internal/config"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
	tokenEnvFile string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token",
	Long: `Sign a bearer token for the HTTP API with TOKEN_KEY from the
environment or the given env file.

Example:
  nirman token --subject site-office --ttl 720h`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "", "Token subject [required]")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	tokenCmd.Flags().StringVar(&tokenEnvFile, "env", "", "Env file to read TOKEN_KEY from")

	tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(tokenEnvFile)
	if err != nil {
		return err
	}
	if tokenTTL <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", tokenTTL)
	}
	env := &auth.Authenv{JWTkey: []byte(cfg.Auth.TokenKey)}
	token, err := env.IssueToken(tokenSubject, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
