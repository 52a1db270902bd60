package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Env           string   `json:"env,omitempty"`
		TokenSignKey  string   `json:"token_sign_key,omitempty"`
		TokenIssuer   string   `json:"token_issuer,omitempty"`
		TokenDuration Duration `json:"token_duration,omitempty"`
		Version       string   `json:"version,omitempty"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn,omitempty"`
		} `json:"db"`

		Objects struct {
			Provider      string `json:"provider,omitempty"`
			Endpoint      string `json:"endpoint,omitempty"`
			Region        string `json:"region,omitempty"`
			AccessKey     string `json:"access_key,omitempty"`
			SecretKey     string `json:"secret_key,omitempty"`
			Bucket        string `json:"bucket,omitempty"`
			UseSSL        bool   `json:"use_ssl,omitempty"`
			PublicBaseURL string `json:"public_base_url,omitempty"`
			Folder        string `json:"folder,omitempty"`
			AllowImages   bool   `json:"allow_images,omitempty"`
		} `json:"objects"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
		AllowedOrigins []string `json:"allowed_origins,omitempty"`
		JSONBodyLimit  int64    `json:"json_body_limit,omitempty"`
		UploadLimit    int64    `json:"upload_limit,omitempty"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
	} `json:"adapter"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	objects := j.Storage.Objects
	cfg := &StructuredConfig{
		App: App{
			Env:           j.App.Env,
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Objects: Objects{
				Provider:      strings.ToLower(objects.Provider),
				Endpoint:      objects.Endpoint,
				Region:        objects.Region,
				AccessKey:     objects.AccessKey,
				SecretKey:     objects.SecretKey,
				Bucket:        objects.Bucket,
				UseSSL:        objects.UseSSL,
				PublicBaseURL: objects.PublicBaseURL,
				Folder:        objects.Folder,
				AllowImages:   objects.AllowImages,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			AllowedOrigins: j.Server.AllowedOrigins,
			JSONBodyLimit:  j.Server.JSONBodyLimit,
			UploadLimit:    j.Server.UploadLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON accepts strings like "1h" or "30s"
// as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
