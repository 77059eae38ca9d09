// Package lexical implements the always-available keyword fallback
// scorer: TF-IDF weighted cosine similarity over the catalog's combined
// text. Pure in-memory computation that never fails, so it can serve
// as the engine of last resort.
package lexical

import (
	"context"
	"math"
	"strings"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Index holds precomputed TF-IDF document vectors, one per catalog row.
type Index struct {
	vectors  []map[string]float64
	norms    []float64
	df       map[string]int
	total    int
	dataHash string
}

// New builds the index over the catalog's combined-text fields.
// docs must be in catalog row order.
func New(docs []string, dataHash string) *Index {
	x := &Index{
		vectors:  make([]map[string]float64, len(docs)),
		norms:    make([]float64, len(docs)),
		df:       make(map[string]int),
		total:    len(docs),
		dataHash: dataHash,
	}

	for i, doc := range docs {
		tf := make(map[string]float64)
		for _, term := range tokenize(doc) {
			tf[term]++
		}
		for term := range tf {
			x.df[term]++
		}
		x.vectors[i] = tf
	}

	for i, tf := range x.vectors {
		var norm float64
		for term, freq := range tf {
			w := x.weight(term, freq)
			tf[term] = w
			norm += w * w
		}
		x.norms[i] = math.Sqrt(norm)
	}

	return x
}

// Info implements the retrieval engine descriptor.
func (x *Index) Info() domain.EngineInfo {
	return domain.EngineInfo{Type: domain.EngineTFIDF}
}

// Score returns relevance per row id in [0,1]. The best match in the
// result set is normalized to 1.0 so scores are comparable across
// queries. Rows with zero overlap are omitted. The error is always nil;
// the signature matches the retrieval engine contract.
func (x *Index) Score(_ context.Context, query string) (map[int]float64, error) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return map[int]float64{}, nil
	}

	qtf := make(map[string]float64)
	for _, term := range terms {
		qtf[term]++
	}
	var qnorm float64
	for term, freq := range qtf {
		w := x.weight(term, freq)
		qtf[term] = w
		qnorm += w * w
	}
	qnorm = math.Sqrt(qnorm)
	if qnorm == 0 {
		return map[int]float64{}, nil
	}

	scores := make(map[int]float64)
	var maxScore float64
	for i, dv := range x.vectors {
		if x.norms[i] == 0 {
			continue
		}
		var dot float64
		for term, w := range qtf {
			dot += w * dv[term]
		}
		if dot <= 0 {
			continue
		}
		s := dot / (qnorm * x.norms[i])
		scores[i] = s
		if s > maxScore {
			maxScore = s
		}
	}

	if maxScore > 0 {
		for i := range scores {
			scores[i] /= maxScore
		}
	}
	return scores, nil
}

func (x *Index) weight(term string, freq float64) float64 {
	df := float64(x.df[term])
	if df == 0 {
		return 0
	}
	idf := math.Log((float64(x.total)+1)/(df+1)) + 1
	return freq * idf
}

var tokenReplacer = strings.NewReplacer(
	",", " ", ".", " ", "/", " ", "\n", " ", "\t", " ",
	":", " ", ";", " ", "-", " ", "_", " ",
	"(", " ", ")", " ", "'", " ", "\"", " ", "&", " ",
)

func tokenize(text string) []string {
	return strings.Fields(tokenReplacer.Replace(strings.ToLower(text)))
}
