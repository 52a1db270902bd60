package config

import "time"

// EnvProduction is the App.Env value of production deployments.
const EnvProduction = "production"

const dotEnvFile = ".env"

// Object storage providers.
const (
	ProviderMinIO = "minio"
	ProviderS3    = "s3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           "development",
			TokenIssuer:   "resume-keeper",
			TokenDuration: 7 * 24 * time.Hour,
		},
		Storage: Storage{
			Objects: Objects{
				Provider: ProviderMinIO,
				Region:   "us-east-1",
				Folder:   "resume-keeper/resumes",
			},
		},
		Server: Server{
			HTTPAddress:    ":8000",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			JSONBodyLimit:  16 << 10,
			UploadLimit:    5 << 20,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
	}
}
