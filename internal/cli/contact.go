package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osa911/lifecycle/internal/airtable"
	"github.com/osa911/lifecycle/internal/contact"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact form tools",
}

var contactSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a message through the contact pipeline",
	Long: `Submit a message exactly as the website form would: the input is
validated and written to the configured Airtable table.

Example:
  lifecycle contact submit --name "Ada" --email ada@example.com --message "Hello"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")

		ctrl := contact.NewController(
			contact.SubmissionConfig{
				Token:     cfg.Airtable.Token,
				BaseID:    cfg.Airtable.BaseID,
				TableName: cfg.Airtable.TableName,
			},
			airtable.NewClient(cfg.Airtable.Timeout, airtable.WithBaseURL(cfg.Airtable.APIURL)),
		)
		defer ctrl.Close()

		ctrl.SetFields(contact.FormFields{Name: name, Email: email, Message: message})

		ctx, stop := signalContext()
		defer stop()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending..."
		s.Start()
		err = ctrl.Submit(ctx)
		s.Stop()
		if err != nil {
			return err
		}

		snap := ctrl.Snapshot()
		if snap.State != contact.StateSuccess {
			return fmt.Errorf("✗ %s", snap.ErrorMessage)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Thank You! Your message has been sent successfully.")
		return nil
	},
}

func init() {
	contactCmd.AddCommand(contactSubmitCmd)

	contactSubmitCmd.Flags().String("name", "", "Full name")
	contactSubmitCmd.Flags().String("email", "", "Email address")
	contactSubmitCmd.Flags().String("message", "", "Message body")
}
