package config

const (
	envFDBaseURL = "FOOTBALL_DATA_BASE_URL"
	envFDAPIKey  = "FOOTBALL_DATA_API_KEY"

	defaultFDBaseURL = "https://api.football-data.org/v4"
)

// FootballDataConfig controls how we talk to the football-data API.
type FootballDataConfig struct {
	BaseURL string
	APIKey  string
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL: envOrDefault(envFDBaseURL, defaultFDBaseURL),
		APIKey:  envOrDefault(envFDAPIKey, ""),
	}
}
