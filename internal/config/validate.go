package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateCompile(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRender() error {
	if c.Render.SurfaceHeight < 0 {
		return errors.New("render.surface_height must be positive")
	}
	if c.Render.OutlineThickness < 0 || c.Render.OutlineThickness > 1 {
		return errors.New("render.outline_thickness must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateCompile() error {
	if c.Compile.PlayResX < 0 || c.Compile.PlayResY < 0 {
		return errors.New("compile.play_res_x and compile.play_res_y must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
