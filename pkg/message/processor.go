package message

import "github.com/dmitrymomot/herald/pkg/macro"

// Processor substitutes the placeholders of a record's templates.
type Processor struct {
	replacer *macro.Replacer
}

// NewProcessor creates a Processor. It panics if replacer is nil.
func NewProcessor(replacer *macro.Replacer) *Processor {
	if replacer == nil {
		panic(ErrNilReplacer)
	}
	return &Processor{replacer: replacer}
}

// Process returns a copy of rec with body, title and subtitle substituted.
// Delivery settings are copied unchanged.
func (p *Processor) Process(objects macro.ObjectMap, rec Record) Record {
	out := p.replacer.ReplaceAll(objects, rec.Body, rec.Title.Text, rec.Title.Subtitle)
	rec.Body, rec.Title.Text, rec.Title.Subtitle = out[0], out[1], out[2]
	return rec
}
