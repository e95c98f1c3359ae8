package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"europlast-backend/internal/contactform"
	"europlast-backend/internal/domain"

	"github.com/spf13/cobra"
)

var errInvalidForm = errors.New("contact form has invalid fields")

type formFlags struct {
	input   domain.ContactInput
	api     string
	timeout time.Duration
}

func (f *formFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.input.Name, "name", "", "your name")
	fs.StringVar(&f.input.Email, "email", "", "reply address")
	fs.StringVar(&f.input.Company, "company", "", "company (optional)")
	fs.StringVar(&f.input.Phone, "phone", "", "phone number")
	fs.StringVar(&f.input.Subject, "subject", "", "message subject")
	fs.StringVar(&f.input.Message, "message", "", "message body")
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Send messages through the Europlast contact form",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newSendCmd(), newValidateCmd())
	return root
}

func newSendCmd() *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Validate the form and submit it to the contact API",
		Long: `Validates every field locally, then posts the message to the API.
Field errors are printed one per line and nothing is sent.

Example:
  contactctl send --api https://api.europlast.eu --name "Alice Doe" \
    --email alice@example.com --phone "+383 44 123 456" \
    --subject "Partnership Inquiry" --message "We would like a quote."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSend(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&flags.api, "api", "http://localhost:8080", "contact API base URL")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", contactform.DefaultTimeout, "maximum wait for delivery")
	return cmd
}

func newValidateCmd() *cobra.Command {
	flags := &formFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the form fields without sending anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, errs := contactform.Validate(flags.input); len(errs) > 0 {
				printFieldErrors(out, errs)
				return errInvalidForm
			}
			fmt.Fprintln(out, "Form is valid")
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func runSend(ctx context.Context, out io.Writer, flags *formFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	notify := contactform.NotifierFunc(func(n contactform.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", n.Level, n.Message)
	})
	form := contactform.New(
		contactform.NewHTTPDelivery(flags.api),
		contactform.WithTimeout(flags.timeout),
		contactform.WithNotifier(notify),
	)
	if err := form.Fill(flags.input); err != nil {
		return err
	}

	err := form.SubmitForm(ctx)
	var verr *domain.ValidationError
	var apiErr *contactform.APIError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		printFieldErrors(out, verr.Fields)
		return errInvalidForm
	case errors.As(err, &apiErr) && len(apiErr.Fields) > 0:
		printFieldErrors(out, apiErr.Fields)
	}
	return err
}

// printFieldErrors writes one line per violated field in form order.
func printFieldErrors(out io.Writer, errs domain.FieldErrors) {
	for _, field := range domain.ContactFields {
		if fe, ok := errs[field]; ok {
			fmt.Fprintf(out, "%s: %s\n", field, fe.Message)
		}
	}
}
