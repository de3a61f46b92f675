package project

import (
	"io"
	"linspace/common/configparser"
	"linspace/common/errors"
	"linspace/common/value"
	"time"
)

// Main runs one sweep as configured by configFile. A missing config file
// means defaults. Lines go to stdout unless the config names another sink.
func Main(configFile string, stdout io.Writer) (err error) {
	if value.StaticValue == nil {
		value.StaticValue = value.InitValue(nil)
	}
	log := value.StaticValue

	parser, err := configparser.Read(configFile)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(parser)
	if err != nil {
		return err
	}
	log.SetLogLevel(cfg.LogLevel)
	log.Debug.Printf("sweep %s [%v, %v] points=%d line=%q",
		cfg.Scale, cfg.Start, cfg.End, cfg.Points, cfg.Line)

	sweep, err := NewSweep(cfg)
	if err != nil {
		return err
	}
	out, err := OpenOutput(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.OutputUnavailableCode, cerr)
		}
	}()

	log.Status = "run"
	begin := time.Now()
	n, err := sweep.Run(out)
	if err != nil {
		log.Status = "error"
		return err
	}
	log.Status = "done"
	log.Debug.Printf("wrote %d lines in %v", n, time.Since(begin))
	return nil
}
