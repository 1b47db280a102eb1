package simulate

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/radioae/train"
	"github.com/sirupsen/logrus"
)

// barProgress shows training as a progress bar.
type barProgress struct {
	bar  *pb.ProgressBar
	last int
}

func (b *barProgress) OnStart(steps int, snrDb float64) {
	logrus.Infof("Training at %v dB", snrDb)
	b.bar = pb.StartNew(steps)
	b.last = 0
}

func (b *barProgress) OnStep(s train.Status) {
	b.bar.Add(s.Step - b.last)
	b.last = s.Step
	b.bar.Set("prefix", fmt.Sprintf("loss %.4f ", s.Loss))
}

func (b *barProgress) OnEnd(s train.Summary) {
	b.bar.Finish()
	logrus.Infof("Training accuracy %.4f, loss %.6f", s.Accuracy, s.Loss)
}
