package config

// Config is the top-level YAML structure.
type Config struct {
	Version  string       `yaml:"version"`
	Log      LogConf      `yaml:"log"`
	Server   ServerConf   `yaml:"server"`
	Store    StoreConf    `yaml:"store"`
	Settings SettingsConf `yaml:"settings"`
	Toolbar  ToolbarConf  `yaml:"toolbar"`
}

// LogConf selects the slog handler. Level falls back to $LOG_LEVEL.
type LogConf struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// ServerConf holds HTTP server settings.
type ServerConf struct {
	Addr              string `yaml:"addr"`
	ReadTimeoutMs     int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs    int    `yaml:"write_timeout_ms"`
	IdleTimeoutMs     int    `yaml:"idle_timeout_ms"`
	ShutdownTimeoutMs int    `yaml:"shutdown_timeout_ms"`
}

// StoreConf selects the settings backend.
type StoreConf struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	DSN    string `yaml:"dsn"`    // database path for sqlite
}

// SettingsConf controls how scope keys are composed.
type SettingsConf struct {
	Prefix string `yaml:"prefix"`
}

// ToolbarConf tunes toolbar reconstruction. Both fields hot-reload.
type ToolbarConf struct {
	Titles  map[string]string `yaml:"titles"`
	SkipIDs []string          `yaml:"skip_ids"`
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)
