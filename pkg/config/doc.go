// Package config loads application configuration from environment variables
// into tagged structs, validates it and caches one copy per type.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and .env files are read
// with github.com/joho/godotenv.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	func (c DatabaseConfig) Validate() error {
//	    return assert.Apply(
//	        func() error { _, err := assert.StringNonWhitespace(c.Host, assert.Field("DB_HOST")); return err },
//	        func() error { _, err := assert.IntegerPositive(c.Port, assert.Field("DB_PORT")); return err },
//	    )
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Any struct implementing Validatable is validated right after parsing. A
// config that fails validation is not cached, so a later Load retries.
//
// # Caching
//
// Parsed values are stored by type name. A sync.Once per type keeps concurrent
// first loads from parsing twice. ResetCache and ForceReloadConfig exist for
// tests that change the environment.
//
// # Error Handling
//
//   - ErrParsingConfig: env.Parse failed (missing required variable, bad number).
//   - ErrInvalidConfig: Validate returned an error, which is joined to it.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrConfigNotLoaded: a concurrent first load failed.
//   - ErrNilPointer: Load was given a nil pointer.
package config
