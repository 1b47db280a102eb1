package train

import (
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/ml/train/losses"
	"github.com/nathanhack/radioae/autoencoder"
	"gonum.org/v1/gonum/mat"
)

// crossEntropy is the mean categorical cross-entropy of the logits against the one-hot labels.
func crossEntropy(labels, logits []*graph.Node) *graph.Node {
	return graph.ReduceAllMean(losses.CategoricalCrossEntropyLogits(labels, logits))
}

// Accuracy returns the fraction of rows whose arg-max prediction matches the label's.
func Accuracy(probs, labels mat.Matrix) float64 {
	predicted := autoencoder.Predict(probs)
	expected := autoencoder.Messages(labels)
	if len(predicted) == 0 {
		return 0
	}
	correct := 0
	for i := range predicted {
		if predicted[i] == expected[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predicted))
}
