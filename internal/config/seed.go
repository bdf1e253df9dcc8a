package config

type Seed struct {
	Enabled      bool     `env:"ENABLED,expand" envDefault:"false"`
	DemoUsers    []string `env:"DEMO_USERS,expand" envSeparator:","`
	DemoMessages []string `env:"DEMO_MESSAGES,expand" envSeparator:";"`
}
