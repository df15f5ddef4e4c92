package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// PlayerResult is one player in the admin players listing
type PlayerResult struct {
	Identifier string     `json:"vat_number"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	HasPlayed  bool       `json:"has_played"`
	Prize      string     `json:"prize"`
	PlayedAt   *time.Time `json:"played_at"`
}

// PlayersResult is the admin players listing response
type PlayersResult struct {
	Players []PlayerResult `json:"players"`
}

// Text implements TextFormatter
func (r PlayersResult) Text() string {
	if len(r.Players) == 0 {
		return "No active players"
	}
	var b strings.Builder
	for _, p := range r.Players {
		fmt.Fprintf(&b, "%s\t%s", p.Identifier, p.Name)
		if p.HasPlayed {
			fmt.Fprintf(&b, "\twon: %s", p.Prize)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PrizeResult is one prize in the catalog response
type PrizeResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	MaxStock *int    `json:"max_stock"`
	Used     *int    `json:"used"`
}

// CatalogResult is the admin catalog response
type CatalogResult struct {
	Prizes []PrizeResult `json:"prizes"`
}

// Text implements TextFormatter
func (r CatalogResult) Text() string {
	if len(r.Prizes) == 0 {
		return "Catalog is empty"
	}
	var b strings.Builder
	for _, p := range r.Prizes {
		fmt.Fprintf(&b, "%s\t%s\tweight=%g", p.ID, p.Name, p.Weight)
		if p.MaxStock != nil && p.Used != nil {
			fmt.Fprintf(&b, "\tstock=%d/%d", *p.Used, *p.MaxStock)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (requires --admin-token)",
	}

	cmd.AddCommand(newAdminAddPlayerCmd())
	cmd.AddCommand(newAdminPlayersCmd())
	cmd.AddCommand(newAdminCatalogCmd())

	return cmd
}

func newAdminAddPlayerCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add-player <vat-number>",
		Short: "Pre-authorize a VAT number to play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"vat_number": args[0],
				"name":       name,
				"email":      email,
			}

			if err := client.Post("/api/v1/admin/players", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Pre-authorized %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&email, "email", "", "Player email")

	return cmd
}

func newAdminPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List active players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayersResult
			if err := client.Get("/api/v1/admin/players", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminCatalogCmd() *cobra.Command {
	var reload bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the prize catalog with stock counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CatalogResult

			if reload {
				if err := client.Post("/api/v1/admin/catalog/reload", nil, &result); err != nil {
					return err
				}
			} else {
				if err := client.Get("/api/v1/admin/catalog", &result); err != nil {
					return err
				}
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reload, "reload", false, "Reload the catalog from storage first")

	return cmd
}
