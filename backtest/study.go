package backtest

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Study selects the DRO model an experiment evaluates. The zero value is
// the tracking study.
type Study string

const (
	Tracking Study = "tracking"
	Excess   Study = "excess"
)

// ParseStudy accepts the names of Tracking and Excess.
func ParseStudy(name string) (Study, error) {
	switch s := Study(name); s {
	case Tracking, Excess:
		return s, nil
	}
	return "", errors.Errorf("backtest: unknown study %q (valid: tracking, excess)", name)
}

// model returns the strategy solved on every training window.
func (s Study) model(o portfolio.Options, radii []float64) portfolio.Strategy {
	if s == Excess {
		return portfolio.ExcessCVaRDRO{Options: o, Radii: radii}
	}
	return portfolio.TrackingDRO{Options: o, Radii: radii}
}

// prefix returns the file name prefix of the arrays written by experiment n.
func (s Study) prefix(n int) string {
	if s == Excess {
		return "Chapter5_Experiment" + strconv.Itoa(n) + "_ExcessModelDRO"
	}
	return "Chapter4_Experiment" + strconv.Itoa(n) + "_TrackingModel"
}
