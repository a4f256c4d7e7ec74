package samples

import (
	"context"
	"fmt"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// RunAgent walks an agent through its lifecycle under brandName: create
// with the full sample payload, get, then a series of masked patches
// (display name, logo, welcome message, availability hours, survey
// configuration), list, and (unless skipDelete) delete.
func RunAgent(ctx context.Context, sc *Scenario, brandName string, skipDelete bool) error {
	fmt.Fprintln(sc.writer(), "Agent script for brand - "+brandName)

	sc.header("Create Agent")
	agent, err := sc.Client.Agents.CreateWithContext(ctx, brandName, SampleAgent())
	if err != nil {
		return err
	}
	sc.print(agent)
	sc.pause()

	sc.header("Get Agent Details")
	agent, err = sc.Client.Agents.GetWithContext(ctx, agent.Name)
	if err != nil {
		return err
	}
	sc.print(agent)
	sc.pause()

	sc.header("Updating Agent Display Name")
	agent.DisplayName = updatedAgentDisplayName
	agent, err = patchAgent(ctx, sc, &agent, "displayName")
	if err != nil {
		return err
	}
	sc.pause()

	sc.header("Updating Agent Logo URL")
	agent.BusinessMessagesAgent.LogoURL = updatedLogoURL
	agent, err = patchAgent(ctx, sc, &agent, "businessMessagesAgent.logoUrl")
	if err != nil {
		return err
	}
	sc.pause()

	sc.header("Updating Agent Welcome Message")
	settings := agent.BusinessMessagesAgent.ConversationalSettings
	setting, ok := settings.Get(defaultLocale)
	if !ok {
		return fmt.Errorf("agent %s has no %q conversational settings", agent.Name, defaultLocale)
	}
	setting.WelcomeMessage = &businesscomms.WelcomeMessage{Text: updatedWelcomeText}
	settings.Set(defaultLocale, setting)
	agent.BusinessMessagesAgent.ConversationalSettings = settings
	agent, err = patchAgent(ctx, sc, &agent, "businessMessagesAgent.conversationalSettings."+defaultLocale)
	if err != nil {
		return err
	}
	sc.pause()

	sc.header("Updating Agent Primary Interaction Available Hours")
	interaction := agent.BusinessMessagesAgent.PrimaryAgentInteraction
	if interaction == nil || interaction.BotRepresentative == nil ||
		interaction.BotRepresentative.BotMessagingAvailability == nil ||
		len(interaction.BotRepresentative.BotMessagingAvailability.Hours) == 0 {
		return fmt.Errorf("agent %s has no bot availability hours to update", agent.Name)
	}
	interaction.BotRepresentative.BotMessagingAvailability.Hours[0].StartTime = businesscomms.TimeOfDay{Hours: 8}
	agent, err = patchAgent(ctx, sc, &agent, "businessMessagesAgent.primaryAgentInteraction")
	if err != nil {
		return err
	}
	sc.pause()

	sc.header("Updating CSAT Survey")
	agent.BusinessMessagesAgent.SurveyConfig = RatingSurveyConfig()
	agent, err = patchAgent(ctx, sc, &agent, "businessMessagesAgent.surveyConfig")
	if err != nil {
		return err
	}
	sc.pause()

	sc.header("List Agents")
	agents, err := sc.Client.Agents.ListWithContext(ctx, brandName)
	if err != nil {
		return err
	}
	sc.print(agents)

	if skipDelete {
		return nil
	}
	sc.pause()

	sc.header("Deleting Agent")
	if err := sc.Client.Agents.DeleteWithContext(ctx, agent.Name); err != nil {
		return err
	}
	sc.print(map[string]string{"deleted": agent.Name})
	return nil
}

func patchAgent(ctx context.Context, sc *Scenario, agent *businesscomms.Agent, paths ...string) (businesscomms.Agent, error) {
	updated, err := sc.Client.Agents.PatchWithContext(ctx, agent, businesscomms.NewFieldMask(paths...))
	if err != nil {
		return businesscomms.Agent{}, err
	}
	sc.print(updated)
	return updated, nil
}
