package holodex

// Options controls Build's per-document signature sizing. The zero value
// resolves to the documented defaults — the same "zero value means
// default" convention the teacher's folio.Config uses in Open.
type Options struct {
	// FalsePositiveRate is the target false positive rate used to size
	// each document's signature. Zero defaults to 0.01 (1%).
	FalsePositiveRate float64

	// MinObservations floors the observation count fed into the sizing
	// formula, so documents with very few fields still get a signature
	// with a reasonable false-positive rate. Zero defaults to 10.
	MinObservations int
}

func (o Options) withDefaults() Options {
	if o.FalsePositiveRate <= 0 {
		o.FalsePositiveRate = 0.01
	}
	if o.MinObservations <= 0 {
		o.MinObservations = 10
	}
	return o
}
