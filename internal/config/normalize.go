package config

import (
	"fmt"
	"runtime"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeRender()
	c.normalizeCompile()
	if err := c.normalizeStylesheet(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeRender() {
	if c.Render.SurfaceHeight == 0 {
		c.Render.SurfaceHeight = defaultSurfaceHeight
	}
	if c.Render.OutlineThickness == 0 {
		c.Render.OutlineThickness = defaultOutlineThickness
	}
}

func (c *Config) normalizeCompile() {
	if c.Compile.Workers <= 0 {
		c.Compile.Workers = runtime.GOMAXPROCS(0)
	}
	c.Compile.DefaultStyle = strings.TrimSpace(c.Compile.DefaultStyle)
	if c.Compile.DefaultStyle == "" {
		c.Compile.DefaultStyle = defaultStyleName
	}
	if c.Compile.PlayResX == 0 {
		c.Compile.PlayResX = defaultPlayResX
	}
	if c.Compile.PlayResY == 0 {
		c.Compile.PlayResY = defaultPlayResY
	}
}

func (c *Config) normalizeStylesheet() error {
	var err error
	if strings.TrimSpace(c.Stylesheet.StorePath) == "" {
		c.Stylesheet.StorePath = defaultStorePath
	}
	if c.Stylesheet.StorePath, err = expandPath(c.Stylesheet.StorePath); err != nil {
		return fmt.Errorf("stylesheet.store_path: %w", err)
	}
	if c.Stylesheet.OutputPath, err = expandPath(strings.TrimSpace(c.Stylesheet.OutputPath)); err != nil {
		return fmt.Errorf("stylesheet.output_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
