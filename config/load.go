package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides maps the YAML override file onto the tunable sections. Each
// section unmarshals over the compiled defaults, so omitted fields keep
// their default values.
type overrides struct {
	Avatar  *AvatarConfig  `yaml:"avatar"`
	Physics *PhysicsConfig `yaml:"physics"`
	Camera  *CameraConfig  `yaml:"camera"`
	Net     *NetConfig     `yaml:"net"`
}

// LoadOverrides layers a YAML tuning file onto the compiled defaults.
// A missing file is not an error; a malformed one is.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read overrides: %w", err)
	}

	o := overrides{
		Avatar:  &Avatar,
		Physics: &Physics,
		Camera:  &Camera,
		Net:     &Net,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return nil
}
