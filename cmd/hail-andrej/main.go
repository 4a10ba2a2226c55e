// Package main provides the hail-andrej demo CLI.
//
// It builds the classic two-input perceptron expression, runs a backward
// pass, and prints every node. With -dot, it also writes the computation
// graph in Graphviz DOT format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/asungy/hail-andrej/autodiff"
)

func main() {
	klog.InitFlags(nil)
	dotPath := flag.String("dot", "", "Write the computation graph in DOT format to this file")
	flag.Parse()

	// o = tanh(x1*w1 + x2*w2 + b)
	x1 := autodiff.New(2.0).WithLabel("x1")
	x2 := autodiff.New(0.0).WithLabel("x2")
	w1 := autodiff.New(-3.0).WithLabel("w1")
	w2 := autodiff.New(1.0).WithLabel("w2")
	b := autodiff.New(6.8813735870195432).WithLabel("b")

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).WithLabel("n")
	o := n.Tanh().WithLabel("o")

	o.Backward()

	fmt.Println("o = tanh(x1*w1 + x2*w2 + b)")
	for _, v := range []*autodiff.Value{x1, x2, w1, w2, b, n, o} {
		fmt.Println(" ", v)
	}

	if *dotPath != "" {
		f, err := os.Create(*dotPath)
		if err != nil {
			log.Fatalf("create %s: %v", *dotPath, err)
		}
		defer f.Close()

		if err := autodiff.WriteDOT(f, o); err != nil {
			log.Fatalf("write DOT: %v", err)
		}
		fmt.Printf("\nwrote %s (render with: dot -Tsvg %s)\n", *dotPath, *dotPath)
	}
}
