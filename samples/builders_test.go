package samples

import (
	"strings"
	"testing"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

func TestSampleAgentPayload(t *testing.T) {
	agent := SampleAgent()

	if agent.DisplayName != sampleAgentDisplayName {
		t.Fatalf("unexpected display name: %s", agent.DisplayName)
	}
	bma := agent.BusinessMessagesAgent
	if bma == nil {
		t.Fatalf("expected business messages configuration")
	}
	if bma.DefaultLocale != defaultLocale {
		t.Fatalf("unexpected default locale: %s", bma.DefaultLocale)
	}

	setting, ok := bma.ConversationalSettings.Get(defaultLocale)
	if !ok {
		t.Fatalf("expected conversational settings for %q", defaultLocale)
	}
	if setting.WelcomeMessage == nil || setting.WelcomeMessage.Text != sampleWelcomeText {
		t.Errorf("unexpected welcome message: %+v", setting.WelcomeMessage)
	}
	if len(setting.ConversationStarters) != 5 {
		t.Fatalf("expected 5 conversation starters, got %d", len(setting.ConversationStarters))
	}
	last := setting.ConversationStarters[4].Suggestion
	if last == nil || last.Action == nil || last.Action.OpenURLAction == nil {
		t.Errorf("expected the last starter to be an open-url action: %+v", last)
	}

	if bma.PrimaryAgentInteraction == nil || bma.PrimaryAgentInteraction.InteractionType != businesscomms.InteractionTypeBot {
		t.Errorf("expected a bot primary interaction: %+v", bma.PrimaryAgentInteraction)
	}
	if len(bma.AdditionalAgentInteractions) != 1 ||
		bma.AdditionalAgentInteractions[0].InteractionType != businesscomms.InteractionTypeHuman {
		t.Errorf("expected a human fallback interaction: %+v", bma.AdditionalAgentInteractions)
	}
	if len(bma.EntryPointConfigs) != 2 {
		t.Errorf("expected location and non-local entry points: %+v", bma.EntryPointConfigs)
	}
	if bma.NonLocalConfig == nil || len(bma.NonLocalConfig.RegionCodes) != 2 {
		t.Errorf("unexpected non-local config: %+v", bma.NonLocalConfig)
	}
	if bma.SurveyConfig == nil || len(bma.SurveyConfig.TemplateQuestionIDs) != 1 {
		t.Errorf("unexpected survey config: %+v", bma.SurveyConfig)
	}
}

func TestSampleLocationPayload(t *testing.T) {
	location := SampleLocation("brands/b1/agents/a1")

	if location.Agent != "brands/b1/agents/a1" {
		t.Fatalf("unexpected agent association: %s", location.Agent)
	}
	if location.PlaceID != samplePlaceID {
		t.Fatalf("unexpected place id: %s", location.PlaceID)
	}
	if len(location.LocationEntryPointConfigs) != 2 {
		t.Fatalf("expected placesheet and maps entry points: %+v", location.LocationEntryPointConfigs)
	}
	setting, ok := location.ConversationalSettings.Get(defaultLocale)
	if !ok || setting.OfflineMessage == nil || setting.OfflineMessage.Text != locationOfflineText {
		t.Fatalf("unexpected conversational settings: %+v ok=%v", setting, ok)
	}
}

func TestRatingSurveyConfig(t *testing.T) {
	survey := RatingSurveyConfig()

	custom, ok := survey.CustomSurveys.Get(defaultLocale)
	if !ok {
		t.Fatalf("expected custom surveys for %q", defaultLocale)
	}
	if len(custom.CustomQuestions) != 2 {
		t.Fatalf("expected 2 custom questions, got %d", len(custom.CustomQuestions))
	}

	stars := custom.CustomQuestions[1].ResponseOptions
	if len(stars) != 5 {
		t.Fatalf("expected 5 star options, got %d", len(stars))
	}
	if stars[4].Content != strings.Repeat("⭐️", 5) {
		t.Errorf("unexpected top rating content: %q", stars[4].Content)
	}
	if stars[0].PostbackData != "1-star" || stars[4].PostbackData != "5-star" {
		t.Errorf("unexpected star postback data: %+v", stars)
	}

	if len(survey.TemplateQuestionIDs) != 2 {
		t.Fatalf("expected 2 template question ids, got %v", survey.TemplateQuestionIDs)
	}
}

func TestRandomNonLocalValues(t *testing.T) {
	cfg := sampleNonLocalConfig()
	if len(cfg.CallDeflectionPhoneNumbers) != 1 ||
		!strings.HasPrefix(cfg.CallDeflectionPhoneNumbers[0].Number, "+1") {
		t.Errorf("unexpected deflection number: %+v", cfg.CallDeflectionPhoneNumbers)
	}
	if len(cfg.EnabledDomains) != 1 || !strings.HasPrefix(cfg.EnabledDomains[0], "https://www.") {
		t.Errorf("unexpected enabled domain: %v", cfg.EnabledDomains)
	}
}
