package nn

import "github.com/asungy/hail-andrej/internal/autodiff"

// Layer is a fully connected layer of independent neurons sharing the
// same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin)
	}
	return &Layer{neurons: neurons}
}

// Forward runs every neuron over the inputs.
func (l *Layer) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

// Parameters returns the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters in the layer.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

// MLP stacks layers so that each layer consumes the previous layer's
// outputs.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a multi-layer perceptron. nin is the input width and
// nouts gives the width of each successive layer.
func NewMLP(nin int, nouts ...int) *MLP {
	layers := make([]*Layer, len(nouts))
	for i, nout := range nouts {
		layers[i] = NewLayer(nin, nout)
		nin = nout
	}
	return &MLP{layers: layers}
}

// Forward feeds the inputs through every layer in order. A final layer of
// width one returns a single-element slice.
func (m *MLP) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outputs := inputs
	for _, l := range m.layers {
		var err error
		outputs, err = l.Forward(outputs)
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// Parameters returns the parameters of every layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters in the network.
func (m *MLP) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}
