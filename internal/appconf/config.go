// Package appconf holds the application configuration shared by the server
// and its services.
package appconf

// Environment identifies the runtime environment.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment converts an environment flag value to its enum.
// Unrecognized values default to Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch envFlag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// String returns the flag spelling of the environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all runtime settings for the server.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	Verbose   bool

	// DataPath is the SQLite database file for saved trips and logs.
	DataPath string

	// ORSAPIKey enables road routing through OpenRouteService. Empty means
	// the engine estimates distances instead.
	ORSAPIKey string

	// GroqAPIKey enables the AI assistant endpoint. Empty disables it.
	GroqAPIKey string
}
