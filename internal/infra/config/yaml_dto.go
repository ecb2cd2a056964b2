package config

type yamlConfig struct {
	Defaults struct {
		Nation string `yaml:"nation"`
		City   string `yaml:"city"`
		Units  string `yaml:"units"`
	} `yaml:"defaults"`

	Cache struct {
		Enabled *bool  `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"cache"`

	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`

	APIKey string `yaml:"api_key"`
}
