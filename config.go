package numint

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigEnv names the environment variable holding the directory of numint.toml.
	ConfigEnv = "NUMINT_CONFIG"
	envPrefix = "NUMINT"
)

// NewtonConfig holds the composite integration parameters.
type NewtonConfig struct {
	Left, Right float64
	Tolerance   float64
	MaxPanels   int
	Weighted    bool // multiply the integrand by e^(-x²)
}

// Weight returns the weight function matching the configuration.
func (c NewtonConfig) Weight() WeightFunc {
	if c.Weighted {
		return ExpWeight
	}
	return Unweighted
}

// GaussConfig holds the Gauss-Hermite parameters.
type GaussConfig struct {
	Nodes        int
	ProperWeight bool
}

// Config is the full numint configuration.
type Config struct {
	Function  Function
	Newton    NewtonConfig
	Gauss     GaussConfig
	Plot      PlotConfig
	OutputDir string
	LogLevel  string
}

func setDefaults(v *viper.Viper) {
	plot := DefaultPlotConfig()
	v.SetDefault("function", Poly1.String())
	v.SetDefault("newton.left", -2.)
	v.SetDefault("newton.right", 2.)
	v.SetDefault("newton.tolerance", 0.001)
	v.SetDefault("newton.max_panels", DefaultMaxPanels)
	v.SetDefault("newton.weighted", true)
	v.SetDefault("gauss.nodes", 3)
	v.SetDefault("gauss.proper_weight", false)
	v.SetDefault("plot.margin", plot.Margin)
	v.SetDefault("plot.outer_samples", plot.OuterSamples)
	v.SetDefault("plot.inner_samples", plot.InnerSamples)
	v.SetDefault("general.output_path", ".")
	v.SetDefault("general.log_level", "info")
}

// NewViper returns a viper instance with every numint default set and
// NUMINT_* environment overrides enabled. If path is empty, numint.toml is
// searched in $NUMINT_CONFIG and then in the working directory, and a missing
// file simply leaves the defaults in place.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
		return v, nil
	}
	v.SetConfigName("numint")
	v.SetConfigType("toml")
	if dir := os.Getenv(ConfigEnv); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// ConfigFromViper reads and validates the configuration held by v.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	f, err := FunctionFromString(v.GetString("function"))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Function: f,
		Newton: NewtonConfig{
			Left:      v.GetFloat64("newton.left"),
			Right:     v.GetFloat64("newton.right"),
			Tolerance: v.GetFloat64("newton.tolerance"),
			MaxPanels: v.GetInt("newton.max_panels"),
			Weighted:  v.GetBool("newton.weighted"),
		},
		Gauss: GaussConfig{
			Nodes:        v.GetInt("gauss.nodes"),
			ProperWeight: v.GetBool("gauss.proper_weight"),
		},
		Plot: PlotConfig{
			Margin:       v.GetFloat64("plot.margin"),
			OuterSamples: v.GetInt("plot.outer_samples"),
			InnerSamples: v.GetInt("plot.inner_samples"),
		},
		OutputDir: v.GetString("general.output_path"),
		LogLevel:  strings.ToLower(v.GetString("general.log_level")),
	}
	return c, c.Validate()
}

// LoadConfig loads the configuration from path (see NewViper for the lookup rules).
func LoadConfig(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return ConfigFromViper(v)
}

// Validate returns an ErrInvalidArgument error describing the first invalid field.
func (c Config) Validate() error {
	switch {
	case !(c.Newton.Tolerance > 0):
		return fmt.Errorf("%w: newton.tolerance must be positive, got %g", ErrInvalidArgument, c.Newton.Tolerance)
	case c.Newton.MaxPanels < 2:
		return fmt.Errorf("%w: newton.max_panels must be at least 2, got %d", ErrInvalidArgument, c.Newton.MaxPanels)
	case c.Plot.OuterSamples < 1 || c.Plot.InnerSamples < 1:
		return fmt.Errorf("%w: plot sample counts must be positive", ErrInvalidArgument)
	case c.Plot.Margin < 0:
		return fmt.Errorf("%w: plot.margin must not be negative, got %g", ErrInvalidArgument, c.Plot.Margin)
	}
	if err := checkNodes(c.Gauss.Nodes); err != nil {
		return fmt.Errorf("gauss.nodes: %w", err)
	}
	if err := checkBounds(c.Newton.Left, c.Newton.Right); err != nil {
		return fmt.Errorf("newton: %w", err)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: unknown log level '%s'", ErrInvalidArgument, c.LogLevel)
	}
	return nil
}
