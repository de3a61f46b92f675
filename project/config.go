package project

import (
	"linspace/common/configparser"
)

const ConfigFile = "config/linspace.cfg"

const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

// SweepConfig holds every tunable of one run. The zero-config defaults
// print the counters 1..1000 for linspace(-5, 5, 1000) on stdout.
type SweepConfig struct {
	Start  float64
	End    float64
	Points int
	Scale  string
	Base   float64

	Zeta float64

	Line   string
	Path   string
	Serial string
	Baud   int

	LogLevel string
}

func DefaultConfig() *SweepConfig {
	return &SweepConfig{
		Start:    -5,
		End:      5,
		Points:   1000,
		Scale:    ScaleLinear,
		Base:     10,
		Zeta:     1.0,
		Line:     "{{ index }}",
		Baud:     115200,
		LogLevel: "error",
	}
}

func LoadConfig(parser *configparser.RawConfigParser) (*SweepConfig, error) {
	var err error
	cfg := DefaultConfig()

	sweep := parser.Getsection("sweep")
	if cfg.Start, err = sweep.Getfloat("start", cfg.Start, nil, nil, nil, nil); err != nil {
		return nil, err
	}
	if cfg.End, err = sweep.Getfloat("end", cfg.End, nil, nil, nil, nil); err != nil {
		return nil, err
	}
	if cfg.Points, err = sweep.Getint("points", cfg.Points, 2, nil); err != nil {
		return nil, err
	}
	if cfg.Scale, err = sweep.Getchoice("scale", []string{ScaleLinear, ScaleLog}, cfg.Scale); err != nil {
		return nil, err
	}
	if cfg.Base, err = sweep.Getfloat("base", cfg.Base, nil, nil, 0., nil); err != nil {
		return nil, err
	}

	orbital := parser.Getsection("orbital")
	if cfg.Zeta, err = orbital.Getfloat("zeta", cfg.Zeta, nil, nil, 0., nil); err != nil {
		return nil, err
	}

	output := parser.Getsection("output")
	if cfg.Line, err = output.Get("line", cfg.Line); err != nil {
		return nil, err
	}
	if cfg.Path, err = output.Get("path", cfg.Path); err != nil {
		return nil, err
	}
	if cfg.Serial, err = output.Get("serial", cfg.Serial); err != nil {
		return nil, err
	}
	if cfg.Baud, err = output.Getint("baud", cfg.Baud, 1, nil); err != nil {
		return nil, err
	}

	sys := parser.Getsection("sys")
	if cfg.LogLevel, err = sys.Getchoice("log_level", []string{"debug", "error", "none"}, cfg.LogLevel); err != nil {
		return nil, err
	}

	if err = parser.Check_unused_options(); err != nil {
		return nil, err
	}
	return cfg, nil
}
