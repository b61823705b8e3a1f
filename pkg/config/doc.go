// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for dotenv files and
// github.com/caarlos0/env/v11 for parsing into tagged structs. The optional
// .env in the working directory is read on every Load; variables already set
// in the process environment win over file values. When several files are
// given with WithEnvFiles, the first file that defines a key wins.
//
//	type StorageConfig struct {
//		Driver string `env:"DRIVER" envDefault:"local"`
//		Bucket string `env:"S3_BUCKET"`
//	}
//
//	cfg, err := config.Load[StorageConfig](config.WithPrefix("FLUID_STORAGE_"))
//	if err != nil {
//		return err
//	}
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be tested with
// errors.Is.
package config
