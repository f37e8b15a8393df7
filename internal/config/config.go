package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Shell      string   `mapstructure:"shell"`
	Terminator string   `mapstructure:"terminator"`
	Markdown   string   `mapstructure:"markdown"`
	Extensions []string `mapstructure:"markdown_extensions"`
	Render     bool     `mapstructure:"render"`
	LogLevel   string   `mapstructure:"log_level"`
	LogFile    string   `mapstructure:"log_file"`
	ColorError string   `mapstructure:"color_error"`
	ColorTitle string   `mapstructure:"color_title"`
	ColorDim   string   `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("shell", "/bin/sh")
	viper.SetDefault("terminator", ";")
	viper.SetDefault("markdown", "markdown")
	viper.SetDefault("markdown_extensions", []string{})
	viper.SetDefault("render", false)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_file", "")
	viper.SetDefault("color_error", "31") // Red
	viper.SetDefault("color_title", "36") // Cyan
	viper.SetDefault("color_dim", "90")   // Gray

	viper.SetConfigName("mdpp")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdpp"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDPP")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetShell returns the interpreter started for every document
func GetShell() string {
	return expandTilde(viper.GetString("shell"))
}

// GetTerminator returns the statement terminator sent to the interpreter
func GetTerminator() string {
	return viper.GetString("terminator")
}

// GetMarkdown returns the downstream renderer command
func GetMarkdown() string {
	return viper.GetString("markdown")
}

// GetMarkdownExtensions returns the goldmark extensions enabled for the
// builtin renderer. Empty means the renderer's defaults.
func GetMarkdownExtensions() []string {
	return viper.GetStringSlice("markdown_extensions")
}

// GetRender returns whether output is piped through the renderer
func GetRender() bool {
	return viper.GetBool("render")
}

// GetLogLevel returns the terminal log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetLogFile returns the JSON log file path with tilde expansion
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

// GetColorError returns ANSI color code for error reports
func GetColorError() string {
	return viper.GetString("color_error")
}

// GetColorTitle returns ANSI color code for titles
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetColorDim returns ANSI color code for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetRender sets render mode at runtime
func SetRender(render bool) {
	viper.Set("render", render)
	C.Render = render
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
