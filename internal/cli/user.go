package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/auranode/auranode/internal/model"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Panel user lookups",
	}

	cmd.AddCommand(newUserFindCmd())
	cmd.AddCommand(newUserServersCmd())

	return cmd
}

func newUserFindCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a panel user by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.FindUserByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}

			if cfg.Output == "json" {
				return printJSON(user)
			}

			fmt.Printf("ID:       %d\n", user.ID)
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Email:    %s\n", user.Email)
			fmt.Printf("Name:     %s\n", user.DisplayName())
			if user.RootAdmin {
				fmt.Println("Role:     admin")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserServersCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "servers",
		Short: "List a panel user's servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			servers, err := client.ListServersForUser(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if cfg.Output == "json" {
				return printJSON(servers)
			}

			if len(servers) == 0 {
				fmt.Println("No servers.")
				return nil
			}
			for _, srv := range servers {
				printServer(srv)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "id", 0, "Panel user ID (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func printServer(srv model.PanelServer) {
	fmt.Printf("%s (%s)\n", srv.Name, srv.Identifier)
	fmt.Printf("  uuid:   %s\n", srv.UUID)
	fmt.Printf("  limits: %dMB RAM / %dMB disk / %d%% CPU\n",
		srv.Limits.Memory, srv.Limits.Disk, srv.Limits.CPU)
}

func printJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
