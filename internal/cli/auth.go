package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/betalabs/feedback-intake/internal/api/request"
	"github.com/betalabs/feedback-intake/internal/api/response"
)

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.LoginResponse
			err := client.Do(http.MethodPost, "/login", request.LoginRequest{
				Username: username,
				Password: password,
			}, &resp)
			if err != nil {
				return err
			}

			if err := cfg.SaveToken(resp.SessionID); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Printf("Logged in as %s\n", resp.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.LogoutResponse
			if err := client.Do(http.MethodPost, "/logout", nil, &resp); err != nil {
				return err
			}

			if err := cfg.ClearToken(); err != nil {
				return err
			}

			fmt.Println(resp.Message)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.StatusResponse
			if err := client.Do(http.MethodGet, "/status", nil, &resp); err != nil {
				return err
			}

			if resp.Authenticated {
				fmt.Printf("Authenticated as %s\n", resp.Username)
			} else {
				fmt.Println("Not authenticated")
			}
			return nil
		},
	}
}
