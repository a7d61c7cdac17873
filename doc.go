// Package hintgraph provides a builder and evaluator for arithmetic
// computation graphs augmented with hint nodes.
//
// A graph is an append-only arena of nodes addressed by index: inputs,
// constants, additions, multiplications, and hints carrying values computed
// outside the graph. The graph is built once, filled with concrete values
// for a designated input, then checked for arithmetic consistency and for
// agreement between each hint and the node it claims to stand for. This is
// the evaluation substrate constraint-system pipelines build upon; it does
// not itself produce proofs.
//
// The core API lives in the graph package. See examples/ for runnable
// walkthroughs.
package hintgraph

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
