package project

import (
	"io"
	"linspace/common/errors"
	"linspace/common/value"
	"os"

	"github.com/tarm/serial"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenOutput picks the sink for the rendered lines: a serial device when
// configured, else a file, else stdout. Closing the stdout sink leaves
// stdout open.
func OpenOutput(cfg *SweepConfig, stdout io.Writer) (io.WriteCloser, error) {
	switch {
	case cfg.Serial != "":
		value.StaticValue.Debug.Printf("opening serial port %s at %d baud", cfg.Serial, cfg.Baud)
		port, err := serial.OpenPort(&serial.Config{Name: cfg.Serial, Baud: cfg.Baud})
		if err != nil {
			return nil, errors.Wrap(errors.OutputUnavailableCode, err)
		}
		return port, nil
	case cfg.Path != "":
		value.StaticValue.Debug.Printf("writing to %s", cfg.Path)
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, errors.Wrap(errors.OutputUnavailableCode, err)
		}
		return f, nil
	default:
		if stdout == nil {
			stdout = os.Stdout
		}
		return nopCloser{stdout}, nil
	}
}
