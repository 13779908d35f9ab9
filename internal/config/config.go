package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Paths    PathsConfig    `mapstructure:"paths" validate:"required"`
	Render   RenderConfig   `mapstructure:"render" validate:"required"`
	Scryfall ScryfallConfig `mapstructure:"scryfall" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// PathsConfig locates the on-disk trees.
type PathsConfig struct {
	// TemplateDir is the read-only template-data tree (frames, fonts, symbols).
	TemplateDir string `mapstructure:"template_dir" validate:"required"`
	// DataDir holds the bulk card file and downloaded card images.
	DataDir   string `mapstructure:"data_dir" validate:"required"`
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}

// RenderConfig controls batch rendering.
type RenderConfig struct {
	Template string `mapstructure:"template" validate:"required,oneof=print plain border-extension"`
	Naming   string `mapstructure:"naming" validate:"oneof=slug artist"`
	Workers  int    `mapstructure:"workers" validate:"gte=1,lte=64"`
	Backs    bool   `mapstructure:"backs"`
	Sheet    bool   `mapstructure:"sheet"`
}

// ScryfallConfig configures the upstream API client.
type ScryfallConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
	BulkType string `mapstructure:"bulk_type" validate:"required"`
	Timeout  int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
