package benchmarking

import (
	"github.com/nathanhack/radioae/autoencoder"
	"github.com/nathanhack/radioae/channel"
	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// maxChunkRows bounds the rows decoded at once when the alphabet is repeated.
const maxChunkRows = 4096

// EvaluateAutoencoder measures the exact BLER of model at every SNR in snrsDb by pushing
// the whole alphabet, repeated repeats times, through normalization, noise, decoding and
// prediction. The encoder output does not depend on the noise so it is computed once.
func EvaluateAutoencoder(model *autoencoder.Model, snrsDb []float64, alphabet mat.Matrix, awgn *channel.AWGN, repeats int) ([]Point, error) {
	if repeats < 1 {
		return nil, simerr.InvalidArgument("repeats must be >=1 but found %v", repeats)
	}
	rate := model.Rate()
	stds := make([]float64, len(snrsDb))
	for i, snr := range snrsDb {
		std, err := channel.NoiseStd(snr, rate)
		if err != nil {
			return nil, err
		}
		stds[i] = std
	}

	e, err := newEvaluation(model, alphabet)
	if err != nil {
		return nil, err
	}

	results := make([]Point, len(snrsDb))
	for i, snr := range snrsDb {
		counter := e.run(stds[i], awgn, repeats)
		logrus.Debugf("Autoencoder (%v,%v) at %v dB: %v", model.ChannelUse, model.BlockSize, snr, counter)
		results[i] = Point{SNR: snr, BLER: counter.ErrorRate(), Blocks: counter.Blocks(), Errors: counter.Errors()}
	}
	return results, nil
}

// EvaluateAtNoiseStd is EvaluateAutoencoder for one pass at an explicit noise standard
// deviation. With std 0 it measures the noiseless channel.
func EvaluateAtNoiseStd(model *autoencoder.Model, alphabet mat.Matrix, std float64, awgn *channel.AWGN) (Point, error) {
	if std < 0 {
		return Point{}, simerr.InvalidArgument("noise std must be >=0 but found %v", std)
	}
	e, err := newEvaluation(model, alphabet)
	if err != nil {
		return Point{}, err
	}
	counter := e.run(std, awgn, 1)
	return Point{BLER: counter.ErrorRate(), Blocks: counter.Blocks(), Errors: counter.Errors()}, nil
}

type evaluation struct {
	model    *autoencoder.Model
	messages []int
	tiled    *mat.Dense // normalized symbols of passes copies of the alphabet
	passes   int
}

func newEvaluation(model *autoencoder.Model, alphabet mat.Matrix) (*evaluation, error) {
	size := model.AlphabetSize()
	if r, c := alphabet.Dims(); r != size || c != size {
		return nil, simerr.InvalidArgument("alphabet is %vx%v but the model needs %vx%v", r, c, size, size)
	}
	symbols, err := model.Symbols(alphabet)
	if err != nil {
		return nil, err
	}

	passes := maxChunkRows / size
	if passes < 1 {
		passes = 1
	}
	tiled := mat.NewDense(passes*size, model.ChannelUse, nil)
	messages := make([]int, 0, passes*size)
	truth := autoencoder.Messages(alphabet)
	for p := 0; p < passes; p++ {
		tiled.Slice(p*size, (p+1)*size, 0, model.ChannelUse).(*mat.Dense).Copy(symbols)
		messages = append(messages, truth...)
	}
	return &evaluation{model: model, messages: messages, tiled: tiled, passes: passes}, nil
}

func (e *evaluation) run(std float64, awgn *channel.AWGN, repeats int) *BlockErrorCounter {
	size := e.model.AlphabetSize()
	counter := &BlockErrorCounter{BlockSize: e.model.BlockSize}
	for done := 0; done < repeats; {
		passes := e.passes
		if repeats-done < passes {
			passes = repeats - done
		}
		rows := passes * size

		noisy := mat.DenseCopyOf(e.tiled.Slice(0, rows, 0, e.model.ChannelUse))
		awgn.AddNoise(noisy, std)
		predicted := autoencoder.Predict(e.model.Decode(noisy))
		for i, p := range predicted {
			counter.Add(p != e.messages[i])
		}
		done += passes
	}
	return counter
}
