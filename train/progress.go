package train

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Status is reported to a Progress while training.
type Status struct {
	Step     int
	Steps    int
	SNR      float64
	Loss     float64
	Accuracy float64
}

// Progress receives training notifications. OnStep is called every ProgressInterval
// steps and on the last step.
type Progress interface {
	OnStart(steps int, snrDb float64)
	OnStep(status Status)
	OnEnd(summary Summary)
}

// LogProgress writes progress through logrus.
type LogProgress struct{}

func (LogProgress) OnStart(steps int, snrDb float64) {
	logrus.Infof("Training for %v steps at %v dB", humanize.Comma(int64(steps)), snrDb)
}

func (LogProgress) OnStep(s Status) {
	logrus.Infof("Step %v/%v loss %.6f accuracy %.4f", humanize.Comma(int64(s.Step)), humanize.Comma(int64(s.Steps)), s.Loss, s.Accuracy)
}

func (LogProgress) OnEnd(s Summary) {
	logrus.Infof("Training finished at %v dB: loss %.6f accuracy %.4f", s.SNR, s.Loss, s.Accuracy)
}

// nopProgress discards every notification.
type nopProgress struct{}

func (nopProgress) OnStart(int, float64) {}
func (nopProgress) OnStep(Status)        {}
func (nopProgress) OnEnd(Summary)        {}

// Silent is a Progress that reports nothing.
var Silent Progress = nopProgress{}
