package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/betalabs/feedback-intake/internal/api/request"
	"github.com/betalabs/feedback-intake/internal/api/response"
)

func newSubmitCmd() *cobra.Command {
	var req request.SubmitFeedbackRequest
	var severity string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a feedback entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if severity != "" {
				req.Severity = &severity
			}

			var resp response.SubmitResponse
			if err := client.Do(http.MethodPost, "/feedback", req, &resp); err != nil {
				return err
			}

			if cfg.JSON {
				return printJSON(resp)
			}

			fmt.Printf("Submitted #%d (%s): %s\n", resp.ID, resp.SubmissionType, resp.Title)
			if !resp.SheetsSynced {
				fmt.Println("Note: not mirrored to the spreadsheet")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.TesterName, "tester", "", "Tester name")
	cmd.Flags().StringVar(&req.SubmissionType, "type", "", "Submission type: Bug, Feedback, Progress")
	cmd.Flags().StringVar(&req.Title, "title", "", "Title")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&severity, "severity", "", "Severity: Low, Medium, High, Critical")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (defaults to New)")
	_ = cmd.MarkFlagRequired("tester")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all submissions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp []response.Submission
			if err := client.Do(http.MethodGet, "/feedback", nil, &resp); err != nil {
				return err
			}

			if cfg.JSON {
				return printJSON(resp)
			}

			for _, sub := range resp {
				printSubmission(sub)
			}
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.Submission
			if err := client.Do(http.MethodGet, "/feedback/"+args[0], nil, &resp); err != nil {
				return err
			}

			if cfg.JSON {
				return printJSON(resp)
			}

			printSubmission(resp)
			fmt.Printf("    %s\n", resp.Description)
			return nil
		},
	}
}

func printSubmission(sub response.Submission) {
	severity := "-"
	if sub.Severity != nil {
		severity = *sub.Severity
	}
	fmt.Printf("#%d [%s/%s] %s by %s (%s, %s)\n",
		sub.ID, sub.SubmissionType, sub.Status, sub.Title,
		sub.TesterName, severity, sub.Timestamp.Format("2006-01-02 15:04"))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
