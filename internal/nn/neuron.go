// Package nn composes autodiff values into neurons, layers, and
// multi-layer perceptrons.
//
// Everything here is a thin consumer of the scalar engine: forward passes
// are built from the Value operations (Mul, Add, Tanh), so gradients for
// every weight and bias fall out of a single Backward call on the output.
// No loss functions or optimizers live here.
package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/asungy/hail-andrej/internal/autodiff"
)

// Neuron is a single tanh unit: out = tanh(Σ wᵢxᵢ + b).
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with nin inputs. Weights and bias are drawn
// uniformly from [-1, 1).
func NewNeuron(nin int) *Neuron {
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		//nolint:gosec // math/rand is appropriate for weight initialization (not security-critical)
		weights[i] = autodiff.New(rand.Float64()*2 - 1)
	}
	return &Neuron{
		weights: weights,
		//nolint:gosec // math/rand is appropriate for weight initialization (not security-critical)
		bias: autodiff.New(rand.Float64()*2 - 1),
	}
}

// Forward computes tanh(Σ wᵢxᵢ + b) for the given inputs.
func (n *Neuron) Forward(inputs []*autodiff.Value) (*autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, errors.Errorf("neuron: got %d inputs, want %d", len(inputs), len(n.weights))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	return act.Tanh(), nil
}

// Parameters returns the trainable values: all weights, then the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	return append(append([]*autodiff.Value{}, n.weights...), n.bias)
}

// ZeroGrad resets the gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}
