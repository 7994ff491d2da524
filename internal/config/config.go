// Package config loads runtime settings from an optional .env file, a YAML
// config file and ROADAPSP_* environment variables (nested keys use "_").
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ROADAPSP_LOG_LEVEL.
const EnvPrefix = "roadapsp"

// ErrNoGraphSource indicates neither graph.file nor synthetic.vertices is set.
var ErrNoGraphSource = errors.New("config: no graph source (set graph.file or synthetic.vertices)")

// ErrUnknownKind indicates an unsupported synthetic.kind value.
var ErrUnknownKind = errors.New("config: unknown synthetic.kind")

// Synthetic graph kinds.
const (
	KindRandom    = "random"    // directed Bernoulli edges with probability
	KindComplete  = "complete"  // every ordered pair
	KindCycle     = "cycle"     // directed ring 0→1→…→0
	KindGeometric = "geometric" // random points in a box, joined within max_meters
)

// Synthetic describes a generated graph.
type Synthetic struct {
	Kind        string
	Vertices    int
	Probability float64
	Seed        int64
	MinWeight   float64
	MaxWeight   float64

	// geometric only
	MaxMeters float64
	MinLat    float64
	MaxLat    float64
	MinLng    float64
	MaxLng    float64
}

// Config is the resolved application configuration.
type Config struct {
	LogLevel    string
	LogFile     string
	GraphFile   string
	GraphName   string
	Synthetic   Synthetic
	Queries     []string
	Workers     int
	PrintMatrix bool
	DatabaseURL string
}

// New returns a viper instance with defaults, env binding and, when found,
// the YAML file. paths are searched for config.yaml in order; a missing
// file is not an error.
func New(paths ...string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("action: load_dotenv | result: skip | reason: no .env file")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("graph.name", "default")
	v.SetDefault("synthetic.kind", KindRandom)
	v.SetDefault("synthetic.probability", 0.2)
	v.SetDefault("synthetic.seed", 1)
	v.SetDefault("synthetic.min_weight", 1.0)
	v.SetDefault("synthetic.max_weight", 100.0)
	v.SetDefault("synthetic.max_meters", 3000.0)
	v.SetDefault("synthetic.min_lat", 42.43)
	v.SetDefault("synthetic.max_lat", 42.65)
	v.SetDefault("synthetic.min_lng", 1.41)
	v.SetDefault("synthetic.max_lng", 1.78)
	v.SetDefault("workers", 0)
	v.SetDefault("print.matrix", false)
	v.SetDefault("graph.file", "")
	v.SetDefault("synthetic.vertices", 0)
	v.SetDefault("queries", []string{})
	v.SetDefault("database.url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
		log.Debug("action: read_config | result: skip | reason: no config file, using env")
	}

	return v, nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		LogLevel:  v.GetString("log.level"),
		LogFile:   v.GetString("log.file"),
		GraphFile: v.GetString("graph.file"),
		GraphName: v.GetString("graph.name"),
		Synthetic: Synthetic{
			Kind:        v.GetString("synthetic.kind"),
			Vertices:    v.GetInt("synthetic.vertices"),
			Probability: v.GetFloat64("synthetic.probability"),
			Seed:        v.GetInt64("synthetic.seed"),
			MinWeight:   v.GetFloat64("synthetic.min_weight"),
			MaxWeight:   v.GetFloat64("synthetic.max_weight"),
			MaxMeters:   v.GetFloat64("synthetic.max_meters"),
			MinLat:      v.GetFloat64("synthetic.min_lat"),
			MaxLat:      v.GetFloat64("synthetic.max_lat"),
			MinLng:      v.GetFloat64("synthetic.min_lng"),
			MaxLng:      v.GetFloat64("synthetic.max_lng"),
		},
		Queries:     v.GetStringSlice("queries"),
		Workers:     v.GetInt("workers"),
		PrintMatrix: v.GetBool("print.matrix"),
		DatabaseURL: v.GetString("database.url"),
	}
	if c.GraphFile == "" && c.Synthetic.Vertices <= 0 {
		return nil, ErrNoGraphSource
	}
	switch c.Synthetic.Kind {
	case KindRandom, KindComplete, KindCycle, KindGeometric:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Synthetic.Kind)
	}
	if c.Synthetic.MaxWeight < c.Synthetic.MinWeight {
		return nil, fmt.Errorf("config: synthetic.max_weight %g < synthetic.min_weight %g",
			c.Synthetic.MaxWeight, c.Synthetic.MinWeight)
	}

	return c, nil
}
