// Package appconf holds application-level (non-domain) configuration.
package appconf

// Environment selects runtime behavior that differs between deployment
// targets, such as the debug pages and log verbosity.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment converts a -env command line flag value into an
// Environment. Unknown values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds server-level settings. Domain settings (feed URLs, station
// groups, route tables) live in railway.Config.
type Config struct {
	Port      int
	Env       Environment
	Verbose   bool
	RateLimit int // requests per second per client; <= 0 disables limiting
	WebDir    string
}
