// Package embedding implements the dense-vector retrieval engine over a
// precomputed, row-aligned embedding artifact. The artifact is a raw
// little-endian float32 matrix with a JSON meta sidecar; it is usable
// only when the recorded catalog hash matches the live catalog;
// anything else is treated as absent rather than silently misaligned.
package embedding

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Meta is the artifact metadata sidecar written by the embedding build step.
type Meta struct {
	ModelName  string `json:"model_name"`
	DataHash   string `json:"data_hash"`
	RowCount   int    `json:"row_count"`
	Dimensions int    `json:"dimensions"`
}

// Encoder maps query text into the artifact's vector space. It is an
// external collaborator (remote model endpoint).
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// Index is the loaded artifact plus its query encoder.
type Index struct {
	vectors [][]float32 // unit-normalized rows, catalog order
	meta    Meta
	encoder Encoder
}

// Load reads and validates the artifact against the live catalog.
// Returns domain.ErrArtifactStale when the recorded hash or row count
// does not match; the caller must then fall back to the lexical index.
func Load(vectorsPath, metaPath string, encoder Encoder, catalogHash string, catalogRows int) (*Index, error) {
	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("read embeddings meta %s: %w", metaPath, err)
	}
	var meta Meta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("parse embeddings meta: %w", err)
	}
	if meta.Dimensions <= 0 || meta.RowCount <= 0 {
		return nil, fmt.Errorf("embeddings meta has invalid shape %dx%d", meta.RowCount, meta.Dimensions)
	}

	if meta.DataHash != catalogHash {
		return nil, fmt.Errorf("recorded hash %.8s does not match catalog %.8s: %w",
			meta.DataHash, catalogHash, domain.ErrArtifactStale)
	}
	if meta.RowCount != catalogRows {
		return nil, fmt.Errorf("recorded %d rows, catalog has %d: %w",
			meta.RowCount, catalogRows, domain.ErrArtifactStale)
	}

	raw, err := os.ReadFile(vectorsPath)
	if err != nil {
		return nil, fmt.Errorf("read embeddings %s: %w", vectorsPath, err)
	}
	want := meta.RowCount * meta.Dimensions * 4
	if len(raw) != want {
		return nil, fmt.Errorf("embeddings file is %d bytes, meta implies %d: %w",
			len(raw), want, domain.ErrArtifactStale)
	}

	vectors := make([][]float32, meta.RowCount)
	for r := 0; r < meta.RowCount; r++ {
		row := make([]float32, meta.Dimensions)
		base := r * meta.Dimensions * 4
		for c := 0; c < meta.Dimensions; c++ {
			bits := binary.LittleEndian.Uint32(raw[base+c*4:])
			row[c] = math.Float32frombits(bits)
		}
		normalize(row)
		vectors[r] = row
	}

	return &Index{vectors: vectors, meta: meta, encoder: encoder}, nil
}

// Info implements the retrieval engine descriptor.
func (x *Index) Info() domain.EngineInfo {
	return domain.EngineInfo{
		Type:     domain.EngineEmbeddings,
		Model:    x.meta.ModelName,
		DataHash: x.meta.DataHash,
	}
}

// Score encodes the query and returns cosine similarity per row,
// min-max normalized to [0,1].
func (x *Index) Score(ctx context.Context, query string) (map[int]float64, error) {
	vec, err := x.encoder.Encode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	if len(vec) != x.meta.Dimensions {
		return nil, fmt.Errorf("encoder returned %d dimensions, artifact has %d: %w",
			len(vec), x.meta.Dimensions, domain.ErrEncoderUnavailable)
	}
	normalize(vec)

	sims := make([]float64, len(x.vectors))
	minSim, maxSim := math.Inf(1), math.Inf(-1)
	for i, row := range x.vectors {
		var dot float64
		for c := range row {
			dot += float64(row[c]) * float64(vec[c])
		}
		sims[i] = dot
		if dot < minSim {
			minSim = dot
		}
		if dot > maxSim {
			maxSim = dot
		}
	}

	scores := make(map[int]float64, len(sims))
	span := maxSim - minSim
	for i, s := range sims {
		if span > 0 {
			scores[i] = (s - minSim) / span
		} else {
			scores[i] = 1.0
		}
	}
	return scores, nil
}

func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}
