package project

import (
	"bufio"
	"io"
	"linspace/common/errors"
	"linspace/common/jinja2"
	"linspace/common/utils/maths"
)

// Sample is one grid point as seen by the line template.
type Sample struct {
	Index int // 1-based counter
	I     int
	X     float64
	R     float64
	STO   float64
	STO1G float64
	STO2G float64
	STO3G float64
}

func (s Sample) Context() jinja2.Context {
	return jinja2.Context{
		"index": s.Index,
		"i":     s.I,
		"x":     s.X,
		"r":     s.R,
		"sto":   s.STO,
		"sto1g": s.STO1G,
		"sto2g": s.STO2G,
		"sto3g": s.STO3G,
	}
}

type Sweep struct {
	cfg  *SweepConfig
	line *jinja2.Template
}

// NewSweep compiles the line template up front so a bad template fails
// before anything is written.
func NewSweep(cfg *SweepConfig) (*Sweep, error) {
	tpl, err := jinja2.NewEnvironment().From_string(cfg.Line)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidTemplateCode, err)
	}
	return &Sweep{cfg: cfg, line: tpl}, nil
}

// Grid generates the sweep values.
func (self *Sweep) Grid() ([]float64, error) {
	if self.cfg.Scale == ScaleLog {
		return maths.Logspace(self.cfg.Start, self.cfg.End, self.cfg.Points, self.cfg.Base)
	}
	return maths.Linspace(self.cfg.Start, self.cfg.End, self.cfg.Points)
}

func (self *Sweep) Samples() ([]Sample, error) {
	xs, err := self.Grid()
	if err != nil {
		return nil, err
	}
	r := maths.Abs1(xs)
	sto, err := STO(self.cfg.Zeta, r)
	if err != nil {
		return nil, err
	}
	var cgf [MaxGaussians][]float64
	for n := 1; n <= MaxGaussians; n++ {
		if cgf[n-1], err = CGF(n, self.cfg.Zeta, r); err != nil {
			return nil, err
		}
	}

	samples := make([]Sample, len(xs))
	for i, x := range xs {
		samples[i] = Sample{
			Index: i + 1,
			I:     i,
			X:     x,
			R:     r[i],
			STO:   sto[i],
			STO1G: cgf[0][i],
			STO2G: cgf[1][i],
			STO3G: cgf[2][i],
		}
	}
	return samples, nil
}

// Run writes one rendered line per sample to w and returns the number of
// lines rendered.
func (self *Sweep) Run(w io.Writer) (int, error) {
	samples, err := self.Samples()
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	for n, s := range samples {
		if err := self.line.RenderTo(bw, s.Context()); err != nil {
			return n, errors.Wrap(errors.RenderFailedCode, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, errors.Wrap(errors.OutputUnavailableCode, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return len(samples), errors.Wrap(errors.OutputUnavailableCode, err)
	}
	return len(samples), nil
}
