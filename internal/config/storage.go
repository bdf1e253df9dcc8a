package config

type Storage struct {
	Database  Database  `envPrefix:"DATABASE_"`
	Bootstrap Bootstrap `envPrefix:"BOOTSTRAP_"`
}

type Database struct {
	DSN string `env:"DSN,expand" envDefault:"data/banter.sqlite"`
}

type Bootstrap struct {
	// Secret guards the one-time schema bootstrap endpoint. The endpoint
	// refuses to run while this is empty.
	Secret string `env:"SECRET"`
}
