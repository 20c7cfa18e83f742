package bench

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Scenario is one benchmark matrix: the named engines are exercised
// at every size with the same randomized key sequence.
type Scenario struct {
	Name    string   `mapstructure:"name" validate:"required"`
	Engines []string `mapstructure:"engines" validate:"required,dive,oneof=naive fatnode nodecopy full"`
	Sizes   []int    `mapstructure:"sizes" validate:"required,dive,gt=0"`
	Seed    int64    `mapstructure:"seed"`
	Deletes bool     `mapstructure:"deletes"`
}

type Configuration struct {
	Scenarios []Scenario `mapstructure:"scenarios" validate:"required,dive"`
}

// DefaultConfiguration compares all engines over doubling sizes, with
// a deletion pass.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Scenarios: []Scenario{
			{
				Name:    "default",
				Engines: []string{"naive", "fatnode", "nodecopy", "full"},
				Sizes:   []int{32, 64, 128, 256, 512},
				Seed:    1,
				Deletes: true,
			},
		},
	}
}

// ParseConfigFile parses the YAML scenario file into the
// Configuration struct.
func ParseConfigFile(filename string) (*Configuration, error) {
	file := viper.New()
	file.SetConfigFile(filename)

	if err := file.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Configuration

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &config,
		ErrorUnused: true, // errors out if there are extra/unmapped keys
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(file.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &config, nil
}
