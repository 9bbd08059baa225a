package stream

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledseq/scene"
)

const maxFrameRate = 1000

// LightConfig places one named light on the strip.
type LightConfig struct {
	ID         string   `yaml:"id"`
	Start      int      `yaml:"start"`
	Count      int      `yaml:"count"`
	Colour     string   `yaml:"colour"`
	Brightness *float64 `yaml:"brightness"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		Pixels    int     `yaml:"pixels"`
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"strip"`
	Lights   []LightConfig `yaml:"lights"`
	Sequence struct {
		Asset    string `yaml:"asset"`
		Editor   bool   `yaml:"editor"`
		Autoplay bool   `yaml:"autoplay"`
	} `yaml:"sequence"`
	API struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// overrides are read from the environment so credentials can stay out of the
// config file.
type overrides struct {
	URL      string `env:"LEDSEQ_MQTT_URL"`
	Username string `env:"LEDSEQ_MQTT_USERNAME"`
	Password string `env:"LEDSEQ_MQTT_PASSWORD"`
	Listen   string `env:"LEDSEQ_API_LISTEN"`
}

// LoadConfig reads the YAML config at path, applies environment overrides,
// fills in defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := new(Config)
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&c.Mqtt.URL, o.URL},
		{&c.Mqtt.Username, o.Username},
		{&c.Mqtt.Password, o.Password},
		{&c.API.Listen, o.Listen},
	} {
		if f.val != "" {
			*f.dst = f.val
		}
	}
	return nil
}

// SetDefaults fills every unset optional field.
func (c *Config) SetDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledseq"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Strip.Pixels == 0 {
		c.Strip.Pixels = 500
	}
	if c.Strip.FrameRate == 0 {
		c.Strip.FrameRate = 30
	}
	if c.API.Listen == "" {
		c.API.Listen = ":3000"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Mqtt.URL == "" {
		errs = append(errs, errors.New("mqtt.url is required"))
	}
	if c.Strip.Pixels <= 0 || c.Strip.Pixels > math.MaxUint16 {
		errs = append(errs, fmt.Errorf("strip.pixels must be between 1 and %d, got %d", math.MaxUint16, c.Strip.Pixels))
	}
	if c.Strip.FrameRate <= 0 || c.Strip.FrameRate > maxFrameRate {
		errs = append(errs, fmt.Errorf("strip.frameRate must be above 0 and at most %d, got %v", maxFrameRate, c.Strip.FrameRate))
	}

	seen := make(map[string]bool, len(c.Lights))
	for i, l := range c.Lights {
		switch {
		case l.ID == "":
			errs = append(errs, fmt.Errorf("lights[%d]: id is required", i))
		case seen[l.ID]:
			errs = append(errs, fmt.Errorf("lights[%d]: duplicate id %q", i, l.ID))
		}
		seen[l.ID] = true

		if l.Count < 0 {
			errs = append(errs, fmt.Errorf("lights[%d]: count must not be negative", i))
		}
		if l.Colour != "" {
			if _, err := colorful.Hex(l.Colour); err != nil {
				errs = append(errs, fmt.Errorf("lights[%d]: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// FrameInterval is the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Strip.FrameRate)
}

// BuildLights creates the configured lights. Call it on a validated Config.
func (c *Config) BuildLights() []*scene.Light {
	lights := make([]*scene.Light, 0, len(c.Lights))
	for _, l := range c.Lights {
		colour := colorful.Color{R: 1, G: 1, B: 1}
		if l.Colour != "" {
			colour, _ = colorful.Hex(l.Colour)
		}
		light := scene.NewLight(l.ID, l.Start, l.Count, colour)
		if l.Brightness != nil {
			light.Brightness = *l.Brightness
		}
		lights = append(lights, light)
	}
	return lights
}
