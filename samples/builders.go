package samples

import (
	"fmt"
	"math/rand"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// Sample payload literals. Builders below assemble fresh resource trees
// from these, so tests can construct variants without repeating them.
const (
	defaultLocale = "en"

	sampleBrandDisplayName  = "Test Brand"
	updatedBrandDisplayName = "New Test Brand Name"

	sampleAgentDisplayName  = "Test Agent"
	updatedAgentDisplayName = "Newly Edited Agent Test"

	sampleCustomAgentID = "My custom agent ID"
	sampleAgentPhone    = "+12223334444"
	nonLocalAgentPhone  = "+12223335555"

	sampleLogoURL  = "https://storage.googleapis.com/sample-logos/google-logo.png"
	updatedLogoURL = "https://developers.google.com/business-communications/images/logo-guidelines/do-logo-alt.png"

	samplePrivacyPolicyURL = "https://www.company.com/privacy"
	sampleContactURL       = "https://www.example-url.com"
	sampleStarterActionURL = "https://www.google.com"

	sampleWelcomeText   = "Welcome! How can I help?"
	updatedWelcomeText  = "The updated welcome message!"
	agentOfflineText    = "We are currently offline, please leave a message and we will get back to you as soon as possible."
	locationOfflineText = "This location is currently offline, please leave a message and we will get back to you as soon as possible."
	sampleTimeZone      = "America/Los_Angeles"

	// Googleplex, used for the location walkthrough.
	samplePlaceID = "ChIJj61dQgK6j4AR4GeTYWZsKWw"
)

// SampleBrand builds the brand create payload.
func SampleBrand() *businesscomms.Brand {
	return &businesscomms.Brand{DisplayName: sampleBrandDisplayName}
}

// SampleAgent builds the full agent create payload: a bot primary
// interaction with weekday availability, a human fallback interaction,
// conversational settings for the default locale, non-local launch
// configuration, entry points, and a survey configuration.
func SampleAgent() *businesscomms.Agent {
	return &businesscomms.Agent{
		DisplayName: sampleAgentDisplayName,
		BusinessMessagesAgent: &businesscomms.BusinessMessagesAgent{
			DefaultLocale: defaultLocale,
			CustomAgentID: sampleCustomAgentID,
			Phone:         &businesscomms.Phone{Number: sampleAgentPhone},
			LogoURL:       sampleLogoURL,
			PrimaryAgentInteraction: &businesscomms.SupportedAgentInteraction{
				InteractionType: businesscomms.InteractionTypeBot,
				BotRepresentative: &businesscomms.BotRepresentative{
					BotMessagingAvailability: &businesscomms.MessagingAvailability{
						Hours: weekdayHours(),
					},
				},
			},
			AdditionalAgentInteractions: []businesscomms.SupportedAgentInteraction{
				{
					InteractionType: businesscomms.InteractionTypeHuman,
					HumanRepresentative: &businesscomms.HumanRepresentative{
						HumanMessagingAvailability: &businesscomms.MessagingAvailability{
							Hours: weekdayHours(),
						},
					},
				},
			},
			ConversationalSettings: businesscomms.LocaleMap[businesscomms.ConversationalSetting]{
				{Locale: defaultLocale, Value: sampleConversationalSetting(agentOfflineText)},
			},
			NonLocalConfig: sampleNonLocalConfig(),
			EntryPointConfigs: []businesscomms.BusinessMessagesEntryPointConfig{
				{AllowedEntryPoint: businesscomms.EntryPointLocation},
				{AllowedEntryPoint: businesscomms.EntryPointNonLocal},
			},
			SurveyConfig: SampleSurveyConfig(),
		},
	}
}

// SampleLocation builds the location create payload tied to agentName.
func SampleLocation(agentName string) *businesscomms.Location {
	return &businesscomms.Location{
		Agent:   agentName,
		PlaceID: samplePlaceID,
		ConversationalSettings: businesscomms.LocaleMap[businesscomms.ConversationalSetting]{
			{Locale: defaultLocale, Value: sampleConversationalSetting(locationOfflineText)},
		},
		LocationEntryPointConfigs: []businesscomms.LocationEntryPointConfig{
			{AllowedEntryPoint: businesscomms.EntryPointPlacesheet},
			{AllowedEntryPoint: businesscomms.EntryPointMapsTactile},
		},
	}
}

// SampleSurveyConfig builds the survey used at agent creation: one custom
// question plus one template question.
func SampleSurveyConfig() *businesscomms.SurveyConfig {
	return &businesscomms.SurveyConfig{
		CustomSurveys: businesscomms.LocaleMap[businesscomms.CustomSurveyConfig]{
			{Locale: defaultLocale, Value: businesscomms.CustomSurveyConfig{
				CustomQuestions: []businesscomms.SurveyQuestion{
					{
						Name:            "Question Name 1",
						QuestionContent: "Did this agent do the best that it could?",
						QuestionType:    businesscomms.QuestionTypePartnerCustom,
						ResponseOptions: thumbResponses(),
					},
				},
			}},
		},
		TemplateQuestionIDs: []string{businesscomms.TemplateQuestionAssociateSatisfaction},
	}
}

// RatingSurveyConfig builds the richer survey the agent walkthrough
// switches to: a yes/no question, a five-step star rating, and two
// template questions.
func RatingSurveyConfig() *businesscomms.SurveyConfig {
	return &businesscomms.SurveyConfig{
		CustomSurveys: businesscomms.LocaleMap[businesscomms.CustomSurveyConfig]{
			{Locale: defaultLocale, Value: businesscomms.CustomSurveyConfig{
				CustomQuestions: []businesscomms.SurveyQuestion{
					{
						Name:            "Question Name 1",
						QuestionContent: "Does a custom question yield better survey results?",
						QuestionType:    businesscomms.QuestionTypePartnerCustom,
						ResponseOptions: thumbResponses(),
					},
					{
						Name:            "Question Name 2",
						QuestionContent: "How would you rate this agent?",
						QuestionType:    businesscomms.QuestionTypePartnerCustom,
						ResponseOptions: starResponses(),
					},
				},
			}},
		},
		TemplateQuestionIDs: []string{
			businesscomms.TemplateQuestionAssociateSatisfaction,
			businesscomms.TemplateQuestionCustomerEffortAlternate,
		},
	}
}

func weekdayHours() []businesscomms.Hours {
	return []businesscomms.Hours{
		{
			StartDay:  businesscomms.DayMonday,
			StartTime: businesscomms.TimeOfDay{Hours: 9},
			EndDay:    businesscomms.DayFriday,
			EndTime:   businesscomms.TimeOfDay{Hours: 17},
			TimeZone:  sampleTimeZone,
		},
	}
}

func sampleConversationalSetting(offlineText string) businesscomms.ConversationalSetting {
	return businesscomms.ConversationalSetting{
		PrivacyPolicy:        &businesscomms.PrivacyPolicy{URL: samplePrivacyPolicyURL},
		WelcomeMessage:       &businesscomms.WelcomeMessage{Text: sampleWelcomeText},
		OfflineMessage:       &businesscomms.OfflineMessage{Text: offlineText},
		ConversationStarters: sampleConversationStarters(),
	}
}

func sampleConversationStarters() []businesscomms.ConversationStarters {
	starters := make([]businesscomms.ConversationStarters, 0, 5)
	for i := 1; i <= 4; i++ {
		starters = append(starters, businesscomms.ConversationStarters{
			Suggestion: &businesscomms.Suggestion{
				Reply: &businesscomms.SuggestedReply{
					Text:         fmt.Sprintf("Chip #%d", i),
					PostbackData: fmt.Sprintf("chip_%d", i),
				},
			},
		})
	}
	starters = append(starters, businesscomms.ConversationStarters{
		Suggestion: &businesscomms.Suggestion{
			Action: &businesscomms.SuggestedAction{
				Text:          "Chip #5",
				PostbackData:  "chip_5",
				OpenURLAction: &businesscomms.OpenURLAction{URL: sampleStarterActionURL},
			},
		},
	})
	return starters
}

func sampleNonLocalConfig() *businesscomms.NonLocalConfig {
	return &businesscomms.NonLocalConfig{
		// Deflection numbers and enabled domains must be globally unique,
		// so the sample generates throwaway values. Replace with real
		// brand values before launching.
		CallDeflectionPhoneNumbers: []businesscomms.Phone{{Number: randomPhoneNumber()}},
		ContactOption: &businesscomms.ContactOption{
			Options: []string{businesscomms.ContactOptionWebChat, businesscomms.ContactOptionFAQs},
			URL:     sampleContactURL,
		},
		EnabledDomains: []string{randomURL()},
		PhoneNumber:    &businesscomms.Phone{Number: nonLocalAgentPhone},
		RegionCodes:    []string{"CA", "US"},
	}
}

func thumbResponses() []businesscomms.SurveyResponse {
	return []businesscomms.SurveyResponse{
		{Content: "👍", PostbackData: "yes"},
		{Content: "👎", PostbackData: "no"},
	}
}

func starResponses() []businesscomms.SurveyResponse {
	responses := make([]businesscomms.SurveyResponse, 0, 5)
	stars := ""
	for i := 1; i <= 5; i++ {
		stars += "⭐️"
		responses = append(responses, businesscomms.SurveyResponse{
			Content:      stars,
			PostbackData: fmt.Sprintf("%d-star", i),
		})
	}
	return responses
}

func randomPhoneNumber() string {
	return fmt.Sprintf("+1%d", 1000000000+rand.Int63n(9000000000))
}

func randomURL() string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	host := make([]byte, 10)
	for i := range host {
		host[i] = letters[rand.Intn(len(letters))]
	}
	return "https://www." + string(host) + ".com"
}
