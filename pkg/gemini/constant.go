package gemini

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// Narrative sampling settings sent with every GenerateText call.
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 8192

	apiKeyHeader = "x-goog-api-key"
)

// Markers Gemini puts in the error body when the key is rejected.
var invalidKeyMarkers = []string{"API_KEY_INVALID", "API key not valid"}
