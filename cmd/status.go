package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/regauth/internal/aws"
	"github.com/vietdv277/regauth/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show instance region, S3 endpoint and authentication status",
	Long: `Display what a download would use: the region (from --region or the
instance identity document), the S3 endpoint derived from it and the
AWS identity the credentials resolve to.

Examples:
  regauth status
  regauth status --region us-west-2`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	client, err := newClient(ctx, clientOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.HeaderStyle.Render("Current Status"))
	fmt.Fprintln(out, ui.Rule(33))
	fmt.Fprintln(out)

	if profile != "" {
		fmt.Fprintln(out, ui.Field("Profile", ui.AWSStyle.Render(profile)))
	}

	resolved := GetRegion()
	if resolved == "" {
		identity, err := aws.GetInstanceIdentity(ctx, client.IMDS)
		if err != nil {
			fmt.Fprintln(out, ui.Field("Instance", ui.StoppedStyle.Render("✗ Not available")))
			fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
			return err
		}
		fmt.Fprintln(out, ui.Field("Instance", identity.InstanceID))
		fmt.Fprintln(out, ui.Field("Zone", identity.AvailabilityZone))
		resolved = identity.Region
		aws.WithRegion(resolved)(client)
	}

	fmt.Fprintln(out, ui.Field("Region", resolved))
	fmt.Fprintln(out, ui.Field("Endpoint", client.Endpoint(resolved)))
	fmt.Fprintln(out, ui.Field("Output", destination))
	fmt.Fprintln(out)

	// Try to get caller identity
	api, err := client.IdentityAPI(ctx)
	if err != nil {
		return err
	}

	identity, err := aws.GetCallerIdentity(ctx, api)
	if err != nil {
		fmt.Fprintln(out, ui.Field("Auth", ui.StoppedStyle.Render("✗ Not authenticated")))
		fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
		return nil
	}

	fmt.Fprintln(out, ui.Field("Auth", ui.RunningStyle.Render("✓ Authenticated")))
	fmt.Fprintln(out, ui.Field("Account", identity.Account))
	fmt.Fprintln(out, ui.Field("User", identity.UserID))
	if identity.Arn != "" {
		fmt.Fprintln(out, ui.Field("ARN", ui.MutedStyle.Render(identity.Arn)))
	}

	return nil
}
