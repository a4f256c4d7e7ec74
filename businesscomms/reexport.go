package businesscomms

import root "github.com/google-business-communications/businesscomms-golang"

type (
	// Core client/config.
	Client       = root.Client
	Config       = root.Config
	ConfigParams = root.ConfigParams
	Logger       = root.Logger

	RequestHook  = root.RequestHook
	ResponseHook = root.ResponseHook

	// API surfaces.
	Auth               = root.Auth
	BrandsAPI          = root.BrandsAPI
	AgentsAPI          = root.AgentsAPI
	LocationsAPI       = root.LocationsAPI
	SurveyQuestionsAPI = root.SurveyQuestionsAPI

	// Resources.
	Brand                            = root.Brand
	Agent                            = root.Agent
	BusinessMessagesAgent            = root.BusinessMessagesAgent
	Location                         = root.Location
	SupportedAgentInteraction        = root.SupportedAgentInteraction
	BotRepresentative                = root.BotRepresentative
	HumanRepresentative              = root.HumanRepresentative
	MessagingAvailability            = root.MessagingAvailability
	Hours                            = root.Hours
	TimeOfDay                        = root.TimeOfDay
	ConversationalSetting            = root.ConversationalSetting
	PrivacyPolicy                    = root.PrivacyPolicy
	WelcomeMessage                   = root.WelcomeMessage
	OfflineMessage                   = root.OfflineMessage
	ConversationStarters             = root.ConversationStarters
	Suggestion                       = root.Suggestion
	SuggestedReply                   = root.SuggestedReply
	SuggestedAction                  = root.SuggestedAction
	OpenURLAction                    = root.OpenURLAction
	Phone                            = root.Phone
	ContactOption                    = root.ContactOption
	NonLocalConfig                   = root.NonLocalConfig
	BusinessMessagesEntryPointConfig = root.BusinessMessagesEntryPointConfig
	LocationEntryPointConfig         = root.LocationEntryPointConfig
	SurveyConfig                     = root.SurveyConfig
	CustomSurveyConfig               = root.CustomSurveyConfig
	SurveyQuestion                   = root.SurveyQuestion
	SurveyResponse                   = root.SurveyResponse
	TemplateSurveyQuestion           = root.TemplateSurveyQuestion

	// Locale-keyed mappings.
	LocaleMap[T any]   = root.LocaleMap[T]
	LocaleEntry[T any] = root.LocaleEntry[T]

	// Partial updates.
	FieldMask = root.FieldMask

	// Responses.
	ListBrandsResponse          = root.ListBrandsResponse
	ListAgentsResponse          = root.ListAgentsResponse
	ListLocationsResponse       = root.ListLocationsResponse
	ListSurveyQuestionsResponse = root.ListSurveyQuestionsResponse

	// Errors.
	APIError              = root.APIError
	InvalidArgumentError  = root.InvalidArgumentError
	AuthenticationError   = root.AuthenticationError
	PermissionDeniedError = root.PermissionDeniedError
	NotFoundError         = root.NotFoundError
	RateLimitError        = root.RateLimitError
	ServerError           = root.ServerError
)

var (
	NewClient            = root.NewClient
	NewClientWithParams  = root.NewClientWithParams
	NewClientWithConfig  = root.NewClientWithConfig
	LoadConfig           = root.LoadConfig
	LoadConfigWithParams = root.LoadConfigWithParams

	NewFieldMask = root.NewFieldMask
	DiffPaths    = root.DiffPaths

	IsBrandName    = root.IsBrandName
	IsAgentName    = root.IsAgentName
	IsLocationName = root.IsLocationName
	BrandOfAgent   = root.BrandOfAgent

	ErrMissingCredentials = root.ErrMissingCredentials
)

const (
	// Scope is the single OAuth scope the management API accepts.
	Scope = root.Scope

	InteractionTypeBot   = root.InteractionTypeBot
	InteractionTypeHuman = root.InteractionTypeHuman

	DayMonday    = root.DayMonday
	DayTuesday   = root.DayTuesday
	DayWednesday = root.DayWednesday
	DayThursday  = root.DayThursday
	DayFriday    = root.DayFriday
	DaySaturday  = root.DaySaturday
	DaySunday    = root.DaySunday

	EntryPointLocation    = root.EntryPointLocation
	EntryPointNonLocal    = root.EntryPointNonLocal
	EntryPointPlacesheet  = root.EntryPointPlacesheet
	EntryPointMapsTactile = root.EntryPointMapsTactile

	ContactOptionWebChat = root.ContactOptionWebChat
	ContactOptionFAQs    = root.ContactOptionFAQs

	QuestionTypePartnerCustom = root.QuestionTypePartnerCustom

	TemplateQuestionAssociateSatisfaction   = root.TemplateQuestionAssociateSatisfaction
	TemplateQuestionCustomerEffortAlternate = root.TemplateQuestionCustomerEffortAlternate
)
