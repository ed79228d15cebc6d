// Package embedding abstracts the sentence-embedding capability provider:
// given texts, produce fixed-length semantic vectors.
package embedding

import "context"

// Provider returns one vector per input text, in input order.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Close() error
}
