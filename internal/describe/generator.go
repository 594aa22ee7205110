package describe

import (
	"context"
	"fmt"
	"math/rand"
)

// Generator produces a marketing description for an item. Implementations
// may call out to an external text service; the shipped one is a local
// template picker.
type Generator interface {
	Generate(ctx context.Context, itemName, category string) (string, error)
}

// templates each take the item name and category, in that order.
var templates = []string{
	"The %s is a standout choice in our %s range, combining everyday reliability with great value.",
	"Discover the %s: a dependable addition to any %s collection, built to perform day after day.",
	"Looking for quality %s gear? The %s delivers consistent results at a price that makes sense.",
	"Our %s brings practical design to the %s category, ideal for both newcomers and seasoned users.",
	"The %s sets the bar in %s, pairing solid construction with a finish customers keep coming back for.",
}

// indexes of templates where category comes before the item name.
var categoryFirst = map[int]bool{2: true}

// TemplateGenerator picks one of a fixed set of phrasings pseudo-randomly.
type TemplateGenerator struct {
	pick func(n int) int
}

// NewTemplateGenerator returns a generator backed by the shared PRNG.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{pick: rand.Intn}
}

// Generate renders one template with the provided name and category.
func (g *TemplateGenerator) Generate(_ context.Context, itemName, category string) (string, error) {
	idx := g.pick(len(templates))
	if categoryFirst[idx] {
		return fmt.Sprintf(templates[idx], category, itemName), nil
	}
	return fmt.Sprintf(templates[idx], itemName, category), nil
}
