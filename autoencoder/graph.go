package autoencoder

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/ml/context"
	"github.com/gomlx/gomlx/pkg/ml/layers/activations"
	"github.com/gomlx/gomlx/pkg/ml/nn"
	"github.com/nathanhack/radioae/internal/simerr"
)

// Scopes of the trainable variables, one per layer in pipeline order.
var layerScopes = []string{"encoder/hidden", "encoder/output", "decoder/hidden", "decoder/output"}

const (
	weightsName = "weights"
	biasesName  = "biases"
)

func scoped(ctx *context.Context, scope string) *context.Context {
	return ctx.InAbsPath(context.RootScope + scope)
}

// Context returns a fresh gomlx context holding the model's current parameters as
// trainable variables, the way Graph expects to find them.
func (m *Model) Context() *context.Context {
	ctx := context.New()
	for i, l := range m.Layers() {
		in, out := l.Dims()
		weights := make([][]float64, in)
		for r := range weights {
			weights[r] = append([]float64(nil), l.W.RawRowView(r)...)
		}
		layerCtx := scoped(ctx, layerScopes[i])
		layerCtx.VariableWithValue(weightsName, weights)
		layerCtx.VariableWithValue(biasesName, append([]float64(nil), l.B[:out]...))
	}
	return ctx
}

// Load copies the variables of ctx, usually after training, back into the model's layers.
func (m *Model) Load(ctx *context.Context) error {
	for i, l := range m.Layers() {
		in, out := l.Dims()
		layerCtx := scoped(ctx, layerScopes[i])

		weights, err := variableData(layerCtx, weightsName, in*out)
		if err != nil {
			return err
		}
		biases, err := variableData(layerCtx, biasesName, out)
		if err != nil {
			return err
		}
		copy(l.W.RawMatrix().Data, weights)
		copy(l.B, biases)
	}
	return nil
}

func variableData(ctx *context.Context, name string, size int) ([]float64, error) {
	v := ctx.GetVariable(name)
	if v == nil {
		return nil, simerr.InvalidArgument("variable %v not found in scope %v", name, ctx.Scope())
	}
	value, err := v.Value()
	if err != nil {
		return nil, simerr.InvalidArgument("variable %v: %v", v.ScopeAndName(), err)
	}
	data := tensors.MustCopyFlatData[float64](value)
	if len(data) != size {
		return nil, simerr.InvalidArgument("variable %v holds %v values but the layer needs %v", v.ScopeAndName(), len(data), size)
	}
	for _, d := range data {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, simerr.NumericDegeneracy("variable %v holds %v", v.ScopeAndName(), d)
		}
	}
	return data, nil
}

// Graph is the model function of the training graph. inputs are the one-hot
// messages [batch, 2^k] and the channel noise [batch, n] to add to the normalized
// symbols; it returns the decoder logits [batch, 2^k].
func Graph(ctx *context.Context, _ any, inputs []*graph.Node) []*graph.Node {
	if len(inputs) != 2 {
		exceptions.Panicf("autoencoder graph takes messages and noise, got %v inputs", len(inputs))
	}
	x, noise := inputs[0], inputs[1]

	hidden := denseGraph(scoped(ctx, layerScopes[0]), x, activations.TypeRelu)
	raw := denseGraph(scoped(ctx, layerScopes[1]), hidden, activations.TypeNone)
	received := graph.Add(NormalizeGraph(raw), noise)

	hidden = denseGraph(scoped(ctx, layerScopes[2]), received, activations.TypeRelu)
	logits := denseGraph(scoped(ctx, layerScopes[3]), hidden, activations.TypeNone)
	return []*graph.Node{logits}
}

// NormalizeGraph is Normalize as a graph operation. A zero row turns into NaNs,
// which the trainer reports through the loss.
func NormalizeGraph(raw *graph.Node) *graph.Node {
	n := raw.Shape().Dimensions[raw.Rank()-1]
	norm := graph.Sqrt(graph.ReduceAndKeep(graph.Square(raw), graph.ReduceSum, -1))
	return graph.MulScalar(graph.Div(raw, norm), math.Sqrt(float64(n)))
}

func denseGraph(ctx *context.Context, x *graph.Node, activation activations.Type) *graph.Node {
	g := x.Graph()
	weights := ctx.GetVariable(weightsName)
	biases := ctx.GetVariable(biasesName)
	if weights == nil || biases == nil {
		exceptions.Panicf("layer %q has no parameters, build the context with Model.Context", ctx.Scope())
	}
	return nn.Dense(x, weights.ValueGraph(g), biases.ValueGraph(g), activation)
}
