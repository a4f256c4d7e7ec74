// Command bcsamples runs the Business Communications command-line
// walkthroughs: brand, agent, and location lifecycles plus the template
// survey question listing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
	"github.com/google-business-communications/businesscomms-golang/samples"
)

const noDeleteArg = "NO-DELETE"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var settingsPath string

	root := &cobra.Command{
		Use:           "bcsamples",
		Short:         "Business Communications management API walkthroughs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&settingsPath, "settings", "samples.yaml", "path to the optional YAML settings file")

	root.AddCommand(newBrandCmd(&settingsPath))
	root.AddCommand(newAgentCmd(&settingsPath))
	root.AddCommand(newLocationCmd(&settingsPath))
	root.AddCommand(newTemplateQuestionsCmd(&settingsPath))
	return root
}

func newBrandCmd(settingsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "brand [NO-DELETE]",
		Short: "Create, get, update, list, and delete a test brand",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skipDelete := len(args) == 1 && args[0] == noDeleteArg
			sc, err := newScenario(cmd, *settingsPath)
			if err != nil {
				return err
			}
			defer sc.Client.Close()
			return samples.RunBrand(cmd.Context(), sc, skipDelete)
		},
	}
}

func newAgentCmd(settingsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "agent BRAND_NAME [NO-DELETE]",
		Short: "Create, get, update, list, and delete a test agent for a brand",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing or malformed brand name prints usage and exits
			// cleanly without touching the remote service.
			if len(args) < 1 || !businesscomms.IsBrandName(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: <BRAND_NAME>")
				return nil
			}
			skipDelete := len(args) == 2 && args[1] == noDeleteArg
			sc, err := newScenario(cmd, *settingsPath)
			if err != nil {
				return err
			}
			defer sc.Client.Close()
			return samples.RunAgent(cmd.Context(), sc, args[0], skipDelete)
		},
	}
}

func newLocationCmd(settingsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "location AGENT_NAME",
		Short: "Create, get, update, list, and delete a test location for an agent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || !businesscomms.IsAgentName(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: <AGENT_NAME>")
				return nil
			}
			sc, err := newScenario(cmd, *settingsPath)
			if err != nil {
				return err
			}
			defer sc.Client.Close()
			return samples.RunLocation(cmd.Context(), sc, args[0])
		},
	}
}

func newTemplateQuestionsCmd(settingsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "template-questions",
		Short: "List the Google-defined template survey questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newScenario(cmd, *settingsPath)
			if err != nil {
				return err
			}
			defer sc.Client.Close()
			return samples.RunTemplateQuestions(cmd.Context(), sc)
		},
	}
}

func newScenario(cmd *cobra.Command, settingsPath string) (*samples.Scenario, error) {
	settings, err := samples.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	client, err := settings.NewClient()
	if err != nil {
		return nil, err
	}
	return &samples.Scenario{
		Client: client,
		Out:    cmd.OutOrStdout(),
		Delay:  settings.Delay(),
	}, nil
}
