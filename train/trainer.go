// Package train fits an autoencoder.Model end to end with Adam on the categorical
// cross-entropy of its decoded messages. The training graph runs on the pure Go
// gomlx backend.
package train

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/backends/simplego"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	mlcontext "github.com/gomlx/gomlx/pkg/ml/context"
	mltrain "github.com/gomlx/gomlx/pkg/ml/train"
	"github.com/gomlx/gomlx/pkg/ml/train/optimizers"
	"github.com/nathanhack/radioae/autoencoder"
	"github.com/nathanhack/radioae/channel"
	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// DefaultLearningRate is the Adam step size used when Config.LearningRate is zero.
const DefaultLearningRate = optimizers.AdamDefaultLearningRate

type State int

const (
	Uninitialized State = iota
	Training
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Training:
		return "Training"
	case Stopped:
		return "Stopped"
	}
	return "Unknown"
}

type Config struct {
	BatchSize    int     // number of copies of the alphabet in every step
	Steps        int     // optimizer steps
	LearningRate float64 // Adam step size, DefaultLearningRate when zero
	Progress     Progress
}

// Summary describes a finished training run.
type Summary struct {
	SNR      float64 // the SNR the model was trained at
	Steps    int
	Loss     float64 // loss of the last step
	Accuracy float64 // accuracy on the last step's batch
}

// Trainer runs the optimization loop. A single rng drives both the batch shuffling and
// the channel noise so a run is reproducible from its seed.
type Trainer struct {
	config Config
	rng    *rand.Rand
	state  State
}

// New creates a trainer. A nil rng gets a time seeded source.
func New(config Config, rng *rand.Rand) *Trainer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if config.LearningRate == 0 {
		config.LearningRate = DefaultLearningRate
	}
	if config.Progress == nil {
		config.Progress = LogProgress{}
	}
	return &Trainer{config: config, rng: rng}
}

func (t *Trainer) State() State {
	return t.state
}

// TrainingSNR returns the SNR the model is trained at: the highest of the evaluation SNRs.
// Nothing is trained at the lower SNRs even though they are evaluated, so the low SNR
// end of the curve may be pessimistic. This may be an oversight in the curriculum.
// TODO: train across snrsDb (per step or per epoch) and compare the resulting curves.
func TrainingSNR(snrsDb []float64) (float64, error) {
	if len(snrsDb) == 0 {
		return 0, simerr.InvalidArgument("at least one snr is required")
	}
	return slices.Max(snrsDb), nil
}

// ProgressInterval is how many steps pass between progress reports.
func ProgressInterval(steps int) int {
	every := steps / 10
	if every < 1 {
		every = 1
	}
	return every
}

// session is the gomlx state of one Train call.
type session struct {
	backend backends.Backend
	ctx     *mlcontext.Context
	trainer *mltrain.Trainer
}

func newSession(model *autoencoder.Model, learningRate float64) (s *session, err error) {
	backend, err := backends.NewWithConfig(simplego.BackendName)
	if err != nil {
		return nil, errors.Wrapf(err, "creating the %v backend", simplego.BackendName)
	}
	s = &session{backend: backend, ctx: model.Context()}

	err = exceptions.TryCatch[error](func() {
		s.trainer = mltrain.NewTrainer(backend, s.ctx, autoencoder.Graph, crossEntropy,
			optimizers.Adam().LearningRate(learningRate).Done(),
			nil, nil)
	})
	if err != nil {
		backend.Finalize()
		return nil, errors.Wrap(err, "building the training graph")
	}
	return s, nil
}

// step runs one optimizer step and returns the batch loss.
func (s *session) step(x, noise, labels *mat.Dense) (float64, error) {
	inputs := []*tensors.Tensor{tensorFromDense(x), tensorFromDense(noise)}
	metrics, err := s.trainer.TrainStep(nil, inputs, []*tensors.Tensor{tensorFromDense(labels)})
	if err != nil {
		return 0, errors.Wrap(err, "training step")
	}
	loss := tensors.ToScalar[float64](metrics[0])
	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		return 0, simerr.NumericDegeneracy("loss is %v", loss)
	}
	return loss, nil
}

func (s *session) release() {
	s.backend.Finalize()
	s.trainer = nil
	s.ctx = nil
}

func tensorFromDense(m *mat.Dense) *tensors.Tensor {
	rows, cols := m.Dims()
	raw := m.RawMatrix()
	if raw.Stride == cols {
		return tensors.FromFlatDataAndDimensions(raw.Data[:rows*cols], rows, cols)
	}
	return tensors.FromFlatDataAndDimensions(mat.DenseCopyOf(m).RawMatrix().Data, rows, cols)
}

// Train runs exactly config.Steps optimizer steps on model, each one over the alphabet
// replicated config.BatchSize times in a freshly shuffled order, with channel noise at
// TrainingSNR(snrsDb). The trained parameters are loaded back into model when it
// returns without error. Cancelling ctx stops between steps and returns ctx.Err().
func (t *Trainer) Train(ctx context.Context, model *autoencoder.Model, alphabet mat.Matrix, snrsDb []float64) (Summary, error) {
	if t.state == Training {
		return Summary{}, simerr.InvalidArgument("trainer is already training")
	}
	if t.config.Steps < 1 {
		return Summary{}, simerr.InvalidArgument("steps must be >=1 but found %v", t.config.Steps)
	}
	if t.config.BatchSize < 1 {
		return Summary{}, simerr.InvalidArgument("batch size must be >=1 but found %v", t.config.BatchSize)
	}
	if !(t.config.LearningRate > 0) {
		return Summary{}, simerr.InvalidArgument("learning rate must be >0 but found %v", t.config.LearningRate)
	}
	size := model.AlphabetSize()
	if r, c := alphabet.Dims(); r != size || c != size {
		return Summary{}, simerr.InvalidArgument("alphabet is %vx%v but the model needs %vx%v", r, c, size, size)
	}
	snr, err := TrainingSNR(snrsDb)
	if err != nil {
		return Summary{}, err
	}
	std, err := channel.NoiseStd(snr, model.Rate())
	if err != nil {
		return Summary{}, err
	}

	t.state = Training
	defer func() { t.state = Stopped }()

	logrus.Debugf("Training (%v,%v) autoencoder only at the highest snr %v dB", model.ChannelUse, model.BlockSize, snr)

	s, err := newSession(model, t.config.LearningRate)
	if err != nil {
		return Summary{}, err
	}
	defer s.release()

	// the dataset is the alphabet replicated BatchSize times
	messages := make([]int, 0, size*t.config.BatchSize)
	for b := 0; b < t.config.BatchSize; b++ {
		for i := 0; i < size; i++ {
			messages = append(messages, i)
		}
	}
	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = mat.Row(nil, i, alphabet)
	}
	x := mat.NewDense(len(messages), size, nil)
	labels := mat.NewDense(len(messages), size, nil)
	noise := mat.NewDense(len(messages), model.ChannelUse, nil)
	awgn := channel.New(t.rng)

	progress := t.config.Progress
	every := ProgressInterval(t.config.Steps)
	progress.OnStart(t.config.Steps, snr)

	summary := Summary{SNR: snr}
	for step := 1; step <= t.config.Steps; step++ {
		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		default:
		}

		t.rng.Shuffle(len(messages), func(i, j int) {
			messages[i], messages[j] = messages[j], messages[i]
		})
		for i, m := range messages {
			x.SetRow(i, rows[m])
		}
		autoencoder.OneHot(labels, messages)
		noise.Zero()
		awgn.AddNoise(noise, std)

		loss, err := s.step(x, noise, labels)
		if err != nil {
			return Summary{}, err
		}

		if step%every == 0 || step == t.config.Steps {
			accuracy, err := batchAccuracy(model, s.ctx, x, noise, labels)
			if err != nil {
				return Summary{}, err
			}
			summary.Steps = step
			summary.Loss = loss
			summary.Accuracy = accuracy
			progress.OnStep(Status{
				Step:     step,
				Steps:    t.config.Steps,
				SNR:      snr,
				Loss:     summary.Loss,
				Accuracy: summary.Accuracy,
			})
		}
	}

	progress.OnEnd(summary)
	return summary, nil
}

// batchAccuracy loads the current parameters into model and decodes the batch
// with the same noise the step trained on.
func batchAccuracy(model *autoencoder.Model, ctx *mlcontext.Context, x, noise, labels *mat.Dense) (float64, error) {
	if err := model.Load(ctx); err != nil {
		return 0, err
	}
	received, err := model.Symbols(x)
	if err != nil {
		return 0, err
	}
	received.Add(received, noise)
	return Accuracy(model.Decode(received), labels), nil
}
