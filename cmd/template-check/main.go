package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"leadmail.app/internal/app"
	"leadmail.app/internal/config"
	"leadmail.app/internal/core/template"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	var (
		cfg      *config.Config
		registry *template.Registry
	)

	root := &cobra.Command{
		Use:           "template-check",
		Short:         "Validate, list and preview the lead mail template sets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load %s: %w", envFile, err)
				}
			}
			var err error
			if cfg, err = config.LoadConfig(); err != nil {
				return err
			}
			registry, err = app.BuildTemplateRegistry(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Render every set against sample fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range registry.IDs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", id)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List template sets and their documented placeholders",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range registry.IDs() {
				set, _ := registry.Get(id)
				printSet(cmd.OutOrStdout(), set)
			}
			return nil
		},
	}

	var (
		fields PreviewInput
		part   string
		out    string
	)
	renderCmd := &cobra.Command{
		Use:   "render <set>",
		Short: "Render a set with the given field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := template.SetIDFromString(args[0])
			if !id.IsValid() {
				return fmt.Errorf("unknown template set %q", args[0])
			}
			if fields.FromAddress == "" {
				fields.FromAddress = cfg.AutoreplyFrom()
			}
			if fields.SiteURL == "" {
				fields.SiteURL = cfg.SiteURL
			}
			rendered, err := registry.Render(id, fields.Fields(id))
			if err != nil {
				return err
			}
			return printRendered(cmd.OutOrStdout(), rendered, part, out)
		},
	}
	renderCmd.Flags().StringVar(&fields.Name, "name", "Ivan Ivanov", "client name")
	renderCmd.Flags().StringVar(&fields.Company, "company", "", "client company")
	renderCmd.Flags().StringVar(&fields.Email, "email", "", "client email")
	renderCmd.Flags().StringVar(&fields.Phone, "phone", "", "client phone")
	renderCmd.Flags().StringVar(&fields.Message, "message", "", "client message")
	renderCmd.Flags().StringVar(&fields.IP, "ip", "", "client IP address")
	renderCmd.Flags().StringVar(&fields.SiteURL, "site-url", "", "site URL used in links (defaults to SITE_URL)")
	renderCmd.Flags().StringVar(&fields.FromAddress, "from-address", "", "autoreply sender address (defaults to the configured one)")
	renderCmd.Flags().StringVar(&part, "part", "all", "part to print: subject|from|text|html|all")
	renderCmd.Flags().StringVar(&out, "out", "text", "output format: text|json")

	root.AddCommand(validateCmd, listCmd, renderCmd)
	return root
}

// PreviewInput collects field values from flags
type PreviewInput struct {
	Name        string
	Company     string
	Email       string
	Phone       string
	Message     string
	IP          string
	SiteURL     string
	FromAddress string
}

func (p PreviewInput) Fields(id template.SetID) template.Fields {
	if id == template.SetClientAutoreply {
		return template.ClientAutoreplyFields{Name: p.Name, SiteURL: p.SiteURL, FromAddress: p.FromAddress}
	}
	return template.OrderNotificationFields{
		Name:      p.Name,
		Company:   p.Company,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   template.DecodeNewlines(p.Message),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		IP:        p.IP,
		SiteURL:   p.SiteURL,
	}
}

func printSet(w io.Writer, set template.Set) {
	fmt.Fprintf(w, "%s\n", set.ID)
	for _, part := range template.Parts {
		used := set.Placeholders(part)
		fmt.Fprintf(w, "  %-8s documented: %s\n", part, strings.Join(set.Documented[part], ", "))
		fmt.Fprintf(w, "  %-8s used:       %s\n", "", strings.Join(used, ", "))
	}
}

func printRendered(w io.Writer, rendered template.Rendered, part, out string) error {
	if out == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rendered)
	}

	switch part {
	case template.PartSubject:
		fmt.Fprintln(w, rendered.Subject)
	case template.PartFrom:
		fmt.Fprintln(w, rendered.FromHeader)
	case template.PartText:
		fmt.Fprintln(w, rendered.TextBody)
	case template.PartHTML:
		fmt.Fprintln(w, rendered.HTMLBody)
	case "all":
		fmt.Fprintf(w, "Subject: %s\nFrom: %s\n\n%s\n\n%s\n", rendered.Subject, rendered.FromHeader, rendered.TextBody, rendered.HTMLBody)
	default:
		return fmt.Errorf("unknown part %q", part)
	}
	return nil
}
