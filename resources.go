package businesscomms

// Resource name fields (Brand.Name, Agent.Name, Location.Name) are assigned
// by the service on create and are immutable afterwards. Create calls strip
// any caller-supplied name before submitting.

// Brand is a top-level business entity that owns agents and locations.
type Brand struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Agent is a conversational agent belonging to a brand.
type Agent struct {
	Name                  string                 `json:"name,omitempty"`
	DisplayName           string                 `json:"displayName,omitempty"`
	BusinessMessagesAgent *BusinessMessagesAgent `json:"businessMessagesAgent,omitempty"`
}

// BusinessMessagesAgent holds the Business Messages specific agent
// configuration.
type BusinessMessagesAgent struct {
	DefaultLocale               string                             `json:"defaultLocale,omitempty"`
	CustomAgentID               string                             `json:"customAgentId,omitempty"`
	Phone                       *Phone                             `json:"phone,omitempty"`
	LogoURL                     string                             `json:"logoUrl,omitempty"`
	PrimaryAgentInteraction     *SupportedAgentInteraction         `json:"primaryAgentInteraction,omitempty"`
	AdditionalAgentInteractions []SupportedAgentInteraction        `json:"additionalAgentInteractions,omitempty"`
	ConversationalSettings      LocaleMap[ConversationalSetting]   `json:"conversationalSettings,omitempty"`
	NonLocalConfig              *NonLocalConfig                    `json:"nonLocalConfig,omitempty"`
	EntryPointConfigs           []BusinessMessagesEntryPointConfig `json:"entryPointConfigs,omitempty"`
	SurveyConfig                *SurveyConfig                      `json:"surveyConfig,omitempty"`
}

// Location is a physical place, tied to an agent by resource name.
type Location struct {
	Name                      string                           `json:"name,omitempty"`
	Agent                     string                           `json:"agent,omitempty"`
	PlaceID                   string                           `json:"placeId,omitempty"`
	ConversationalSettings    LocaleMap[ConversationalSetting] `json:"conversationalSettings,omitempty"`
	LocationEntryPointConfigs []LocationEntryPointConfig       `json:"locationEntryPointConfigs,omitempty"`
}

// Interaction types.
const (
	InteractionTypeBot   = "BOT"
	InteractionTypeHuman = "HUMAN"
)

// SupportedAgentInteraction configures one representation layer
// (automated or human) with its own availability.
type SupportedAgentInteraction struct {
	InteractionType     string               `json:"interactionType,omitempty"`
	BotRepresentative   *BotRepresentative   `json:"botRepresentative,omitempty"`
	HumanRepresentative *HumanRepresentative `json:"humanRepresentative,omitempty"`
}

type BotRepresentative struct {
	BotMessagingAvailability *MessagingAvailability `json:"botMessagingAvailability,omitempty"`
}

type HumanRepresentative struct {
	HumanMessagingAvailability *MessagingAvailability `json:"humanMessagingAvailability,omitempty"`
}

// MessagingAvailability is an ordered sequence of weekly windows.
type MessagingAvailability struct {
	Hours []Hours `json:"hours,omitempty"`
}

// Days of the week for availability windows.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// Hours is one weekly availability window.
type Hours struct {
	StartDay  string    `json:"startDay,omitempty"`
	StartTime TimeOfDay `json:"startTime,omitempty"`
	EndDay    string    `json:"endDay,omitempty"`
	EndTime   TimeOfDay `json:"endTime,omitempty"`
	TimeZone  string    `json:"timeZone,omitempty"`
}

// TimeOfDay is a wall-clock time; zero fields are omitted on the wire.
type TimeOfDay struct {
	Hours   int `json:"hours,omitempty"`
	Minutes int `json:"minutes,omitempty"`
}

// ConversationalSetting is the per-locale conversation configuration.
type ConversationalSetting struct {
	PrivacyPolicy        *PrivacyPolicy         `json:"privacyPolicy,omitempty"`
	WelcomeMessage       *WelcomeMessage        `json:"welcomeMessage,omitempty"`
	OfflineMessage       *OfflineMessage        `json:"offlineMessage,omitempty"`
	ConversationStarters []ConversationStarters `json:"conversationStarters,omitempty"`
}

type PrivacyPolicy struct {
	URL string `json:"url,omitempty"`
}

type WelcomeMessage struct {
	Text string `json:"text,omitempty"`
}

type OfflineMessage struct {
	Text string `json:"text,omitempty"`
}

// ConversationStarters wraps one starter suggestion.
type ConversationStarters struct {
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Suggestion is either a reply chip or an action.
type Suggestion struct {
	Reply  *SuggestedReply  `json:"reply,omitempty"`
	Action *SuggestedAction `json:"action,omitempty"`
}

type SuggestedReply struct {
	Text         string `json:"text,omitempty"`
	PostbackData string `json:"postbackData,omitempty"`
}

type SuggestedAction struct {
	Text          string         `json:"text,omitempty"`
	PostbackData  string         `json:"postbackData,omitempty"`
	OpenURLAction *OpenURLAction `json:"openUrlAction,omitempty"`
}

type OpenURLAction struct {
	URL string `json:"url,omitempty"`
}

type Phone struct {
	Number string `json:"number,omitempty"`
}

// Contact option surfaces shown next to the messaging button.
const (
	ContactOptionWebChat = "WEB_CHAT"
	ContactOptionFAQs    = "FAQS"
)

type ContactOption struct {
	Options []string `json:"options,omitempty"`
	URL     string   `json:"url,omitempty"`
}

// NonLocalConfig governs launches on entry points not tied to a location.
type NonLocalConfig struct {
	CallDeflectionPhoneNumbers []Phone        `json:"callDeflectionPhoneNumbers,omitempty"`
	ContactOption              *ContactOption `json:"contactOption,omitempty"`
	EnabledDomains             []string       `json:"enabledDomains,omitempty"`
	PhoneNumber                *Phone         `json:"phoneNumber,omitempty"`
	RegionCodes                []string       `json:"regionCodes,omitempty"`
}

// Agent-level entry points.
const (
	EntryPointLocation = "LOCATION"
	EntryPointNonLocal = "NON_LOCAL"
)

type BusinessMessagesEntryPointConfig struct {
	AllowedEntryPoint string `json:"allowedEntryPoint,omitempty"`
}

// Location-level entry points.
const (
	EntryPointPlacesheet  = "PLACESHEET"
	EntryPointMapsTactile = "MAPS_TACTILE"
)

type LocationEntryPointConfig struct {
	AllowedEntryPoint string `json:"allowedEntryPoint,omitempty"`
}

// QuestionTypePartnerCustom marks partner-authored survey questions.
const QuestionTypePartnerCustom = "PARTNER_CUSTOM_QUESTION"

// Google-defined template survey question identifiers used by the samples.
const (
	TemplateQuestionAssociateSatisfaction   = "GOOGLE_DEFINED_ASSOCIATE_SATISFACTION"
	TemplateQuestionCustomerEffortAlternate = "GOOGLE_DEFINED_CUSTOMER_EFFORT_ALTERNATE"
)

// SurveyConfig holds per-locale custom question sets plus template
// question identifiers.
type SurveyConfig struct {
	CustomSurveys       LocaleMap[CustomSurveyConfig] `json:"customSurveys,omitempty"`
	TemplateQuestionIDs []string                      `json:"templateQuestionIds,omitempty"`
}

type CustomSurveyConfig struct {
	CustomQuestions []SurveyQuestion `json:"customQuestions,omitempty"`
}

// SurveyQuestion is one custom question with its ordered response options.
type SurveyQuestion struct {
	Name            string           `json:"name,omitempty"`
	QuestionContent string           `json:"questionContent,omitempty"`
	QuestionType    string           `json:"questionType,omitempty"`
	ResponseOptions []SurveyResponse `json:"responseOptions,omitempty"`
}

type SurveyResponse struct {
	Content      string `json:"content,omitempty"`
	PostbackData string `json:"postbackData,omitempty"`
}

// TemplateSurveyQuestion is a Google-defined question available for reuse
// via SurveyConfig.TemplateQuestionIDs.
type TemplateSurveyQuestion struct {
	Name            string           `json:"name,omitempty"`
	QuestionContent string           `json:"questionContent,omitempty"`
	QuestionType    string           `json:"questionType,omitempty"`
	ResponseOptions []SurveyResponse `json:"responseOptions,omitempty"`
}
