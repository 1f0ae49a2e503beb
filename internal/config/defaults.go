package config

const (
	defaultSurfaceHeight    = 1080
	defaultOutlineThickness = 0.0075
	defaultStyleName        = "Default"
	defaultPlayResX         = 384
	defaultPlayResY         = 288
	defaultStorePath        = "~/.local/share/subtag/rules.db"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Render: Render{
			SurfaceHeight:    defaultSurfaceHeight,
			OutlineThickness: defaultOutlineThickness,
		},
		Compile: Compile{
			DefaultStyle: defaultStyleName,
			PlayResX:     defaultPlayResX,
			PlayResY:     defaultPlayResY,
		},
		Stylesheet: Stylesheet{
			StorePath: defaultStorePath,
			Persist:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
