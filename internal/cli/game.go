package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AuthorizeResult is the authorize endpoint response
type AuthorizeResult struct {
	PlayerName string `json:"player_name"`
}

// Text implements TextFormatter
func (r AuthorizeResult) Text() string {
	return fmt.Sprintf("Authorized: %s", r.PlayerName)
}

// PlayResult is the play endpoint response
type PlayResult struct {
	PrizeName string `json:"prize_name"`
}

// Text implements TextFormatter
func (r PlayResult) Text() string {
	return fmt.Sprintf("You won: %s", r.PrizeName)
}

func newAuthorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authorize <vat-number>",
		Short: "Check that a VAT number may play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"vat_number": args[0]}

			var result AuthorizeResult
			if err := client.Post("/api/v1/game/authorize", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "play <vat-number>",
		Short: "Play the one-shot prize draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"vat_number": args[0],
				"name":       name,
				"email":      email,
			}

			var result PlayResult
			if err := client.Post("/api/v1/game/play", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address for the winner notice")

	return cmd
}
