// Copyright 2025 The hail-andrej Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn builds neurons, layers, and multi-layer perceptrons on top
// of the scalar autodiff engine.
//
// Example:
//
//	import (
//	    "github.com/asungy/hail-andrej/autodiff"
//	    "github.com/asungy/hail-andrej/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, 4, 4, 1)
//
//	    x := []*autodiff.Value{
//	        autodiff.New(2.0), autodiff.New(3.0), autodiff.New(-1.0),
//	    }
//	    out, err := model.Forward(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out[0].Backward()
//	    for _, p := range model.Parameters() {
//	        fmt.Println(p.Grad())
//	    }
//	}
package nn

import "github.com/asungy/hail-andrej/internal/nn"

// Neuron is a single tanh unit: out = tanh(Σ wᵢxᵢ + b).
type Neuron = nn.Neuron

// Layer is a fully connected layer of neurons sharing the same inputs.
type Layer = nn.Layer

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// NewNeuron creates a neuron with nin inputs and randomly initialized
// weights and bias.
func NewNeuron(nin int) *Neuron {
	return nn.NewNeuron(nin)
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int) *Layer {
	return nn.NewLayer(nin, nout)
}

// NewMLP creates a multi-layer perceptron. nin is the input width and
// nouts gives the width of each successive layer.
func NewMLP(nin int, nouts ...int) *MLP {
	return nn.NewMLP(nin, nouts...)
}
