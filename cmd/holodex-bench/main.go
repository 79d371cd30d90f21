// Command holodex-bench builds a Holodex from a line-delimited JSON file
// and runs a single equality or existence query against it, printing the
// resulting candidate count and build/query timing, plus pre-filter
// metrics when -true-matches is given.
//
// Usage:
//
//	holodex-bench -input posts.ndjson -path author._ref -value author-1
//	holodex-bench -input posts.ndjson -path author._ref -defined
//
// CLI argument handling and logging are explicit out-of-scope
// collaborators for the holodex package itself (spec §1); this is a
// thin reference caller, not part of the fingerprinting core.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/tidx/holodex"
	"github.com/tidx/holodex/ingest"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "path to a line-delimited JSON document file")
		queryPath  = flag.String("path", "", "structural path to query, e.g. body[0].text")
		queryValue = flag.String("value", "", "string value to match for an equality query")
		defined    = flag.Bool("defined", false, "run an existence query instead of equality")
		fpr        = flag.Float64("fpr", 0.01, "target false positive rate per document signature")
		trueCount  = flag.Int("true-matches", -1, "known true match count, for metrics (-1 to skip)")
	)
	flag.Parse()

	if *inputPath == "" || *queryPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !*defined && *queryValue == "" {
		log.Fatal("holodex-bench: -value is required unless -defined is set")
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("holodex-bench: %v", err)
	}
	defer f.Close()

	docs, err := ingest.ReadAll(f, ingest.Options{})
	if err != nil {
		log.Fatalf("holodex-bench: %v", err)
	}
	log.Printf("holodex-bench: loaded %d documents from %s", len(docs), *inputPath)

	buildStart := time.Now()
	idx := holodex.Build(docs, holodex.Options{FalsePositiveRate: *fpr})
	buildElapsed := time.Since(buildStart)

	queryStart := time.Now()
	var positions []int
	if *defined {
		positions = idx.CandidatesDefined(*queryPath)
	} else {
		positions = idx.CandidatesEq(*queryPath, holodex.String(*queryValue))
	}
	queryElapsed := time.Since(queryStart)

	log.Printf("holodex-bench: build took %s, query took %s", buildElapsed, queryElapsed)
	log.Printf("holodex-bench: %d candidates out of %d documents (%d bytes of signatures)",
		len(positions), idx.Len(), idx.SizeBytes())

	if *trueCount >= 0 {
		m := holodex.CalculateMetrics(idx.Len(), len(positions), *trueCount)
		log.Printf("holodex-bench: false_positives=%d fpr=%.4f reduction_ratio=%.4f",
			m.FalsePositives, m.FalsePositiveRate, m.ReductionRatio)
	}
}
