// Package ml implements the interest classifier behind /ml/* and the
// prediction endpoints. It is a small nearest-centroid model over per-category
// engagement features, trained on seeded synthetic samples, which is all the
// demo needs: the interesting contract is the prediction shape, not the model.
package ml

import (
	"encoding/gob"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adpulse/adpulse/internal/catalog"
	"github.com/adpulse/adpulse/internal/domain"
)

const (
	ModelVersion     = "1.0.0"
	modelType        = "NearestCentroidClassifier"
	DefaultModelPath = "./ml_models/user_classifier.gob"

	syntheticSamples = 1000
	holdoutFraction  = 0.2
	trainSeed        = 42
)

// Features is the engagement profile extracted from one user's interactions.
type Features struct {
	Clicks map[string]float64 // per interest category
	Time   map[string]float64 // per interest category, seconds

	TotalSessions      float64
	AvgSessionDuration float64
	TotalInteractions  float64
}

// Classifier is safe for concurrent use; training swaps the model under a
// write lock while predictions take a read lock.
type Classifier struct {
	mu        sync.RWMutex
	centroids map[string][]float64
	means     []float64
	stddevs   []float64
	accuracy  float64
	trainedAt time.Time

	modelPath string
}

func NewClassifier(modelPath string) *Classifier {
	if modelPath == "" {
		modelPath = DefaultModelPath
	}
	c := &Classifier{modelPath: modelPath}
	// best effort: a previously trained model on disk is picked up silently
	_ = c.load()
	return c
}

// FeatureNames returns the model's input schema in stable order.
func FeatureNames() []string {
	names := make([]string, 0, 2*len(catalog.InterestCategories)+3)
	for _, cat := range catalog.InterestCategories {
		names = append(names, cat+"_clicks", cat+"_time")
	}
	return append(names, "total_sessions", "avg_session_duration", "total_interactions")
}

// ExtractFeatures folds raw interactions into the model's feature profile.
// Content categories are mapped to interest labels first.
func ExtractFeatures(events []domain.InteractionEvent) Features {
	f := Features{
		Clicks: make(map[string]float64),
		Time:   make(map[string]float64),
	}
	sessions := make(map[string]struct{})
	var totalDuration float64

	for _, e := range events {
		interest := catalog.InterestForCategory(e.ContentCategory)
		if e.EventType == domain.EventClick {
			f.Clicks[interest]++
		}
		f.Time[interest] += float64(e.Duration)
		totalDuration += float64(e.Duration)
		if e.SessionID != "" {
			sessions[e.SessionID] = struct{}{}
		}
	}

	f.TotalInteractions = float64(len(events))
	f.TotalSessions = float64(len(sessions))
	if len(sessions) > 0 {
		f.AvgSessionDuration = totalDuration / float64(len(sessions))
	}
	return f
}

func (f Features) vector() []float64 {
	v := make([]float64, 0, 2*len(catalog.InterestCategories)+3)
	for _, cat := range catalog.InterestCategories {
		v = append(v, f.Clicks[cat], f.Time[cat])
	}
	return append(v, f.TotalSessions, f.AvgSessionDuration, f.TotalInteractions)
}

// Train fits the model on synthetic engagement profiles and returns holdout
// accuracy. Deterministic: the sample generator is seeded.
func (c *Classifier) Train() (float64, error) {
	rng := rand.New(rand.NewSource(trainSeed))
	vectors, labels := syntheticData(rng, syntheticSamples)

	holdout := int(float64(len(vectors)) * holdoutFraction)
	trainX, trainY := vectors[holdout:], labels[holdout:]
	testX, testY := vectors[:holdout], labels[:holdout]

	means, stddevs := fitScaler(trainX)
	centroids := make(map[string][]float64)
	counts := make(map[string]int)
	for i, x := range trainX {
		scaled := scale(x, means, stddevs)
		cent, ok := centroids[trainY[i]]
		if !ok {
			cent = make([]float64, len(scaled))
			centroids[trainY[i]] = cent
		}
		for j, val := range scaled {
			cent[j] += val
		}
		counts[trainY[i]]++
	}
	for label, cent := range centroids {
		for j := range cent {
			cent[j] /= float64(counts[label])
		}
	}

	correct := 0
	for i, x := range testX {
		if nearestLabel(scale(x, means, stddevs), centroids) == testY[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(testX))

	c.mu.Lock()
	c.centroids = centroids
	c.means = means
	c.stddevs = stddevs
	c.accuracy = accuracy
	c.trainedAt = time.Now().UTC()
	c.mu.Unlock()

	if err := c.save(); err != nil {
		return accuracy, fmt.Errorf("model trained but not persisted: %w", err)
	}
	return accuracy, nil
}

// Trained reports whether a model is available for feature-weighted scoring.
func (c *Classifier) Trained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.centroids != nil
}

// Predict derives an interest prediction from a user's interactions.
// With no trained model the score recipe degrades to pure category counting:
// the most browsed category wins and every other interest keeps a 0.1
// baseline, matching the long-standing demo behavior.
func (c *Classifier) Predict(events []domain.InteractionEvent) (*domain.InterestPrediction, error) {
	if len(events) == 0 {
		return nil, domain.ErrNoData("No interaction data available for prediction")
	}

	counts := make(map[string]int)
	visited := make([]string, 0)
	for _, e := range events {
		if e.ContentCategory == "" {
			continue
		}
		interest := catalog.InterestForCategory(e.ContentCategory)
		if counts[interest] == 0 {
			visited = append(visited, interest)
		}
		counts[interest]++
	}

	confidence := math.Min(0.9, 0.5+0.1*float64(len(events)))

	primary := "technology"
	if len(counts) == 0 {
		confidence = 0.5
	} else {
		best := -1
		for interest, n := range counts {
			if n > best || (n == best && interest < primary) {
				best = n
				primary = interest
			}
		}
	}

	scores := make(map[string]float64, len(catalog.InterestCategories))
	for _, interest := range catalog.InterestCategories {
		scores[interest] = 0.1
	}

	if c.Trained() {
		// feature-weighted scores: clicks count double, dwell time at 1/10
		f := ExtractFeatures(events)
		raw := make(map[string]float64, len(catalog.InterestCategories))
		var maxRaw float64
		for _, interest := range catalog.InterestCategories {
			r := f.Clicks[interest]*2 + f.Time[interest]/10
			raw[interest] = r
			if r > maxRaw {
				maxRaw = r
			}
		}
		if maxRaw > 0 {
			for interest, r := range raw {
				if r > 0 {
					scores[interest] = 0.1 + (confidence-0.1)*(r/maxRaw)
				}
			}
		}
	}
	scores[primary] = confidence

	return &domain.InterestPrediction{
		PrimaryInterest: primary,
		InterestScores:  scores,
		Confidence:      confidence,
		FeaturesUsed: domain.FeaturesUsed{
			TotalInteractions: len(events),
			CategoriesVisited: visited,
		},
		ModelVersion: ModelVersion,
	}, nil
}

// Info reports model metadata. Before the first training only the status is
// populated, matching the original contract.
func (c *Classifier) Info() domain.ModelInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.centroids == nil {
		return domain.ModelInfo{Status: domain.ModelUntrained}
	}
	return domain.ModelInfo{
		Status:       domain.ModelTrained,
		ModelType:    modelType,
		Categories:   append([]string(nil), catalog.InterestCategories...),
		FeatureNames: FeatureNames(),
		ModelPath:    c.modelPath,
	}
}

func (c *Classifier) Accuracy() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accuracy
}

// --- persistence ---

type modelState struct {
	Centroids map[string][]float64
	Means     []float64
	Stddevs   []float64
	Accuracy  float64
	TrainedAt time.Time
}

func (c *Classifier) save() error {
	c.mu.RLock()
	state := modelState{
		Centroids: c.centroids,
		Means:     c.means,
		Stddevs:   c.stddevs,
		Accuracy:  c.accuracy,
		TrainedAt: c.trainedAt,
	}
	c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.modelPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(c.modelPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(state)
}

func (c *Classifier) load() error {
	f, err := os.Open(c.modelPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var state modelState
	if err := gob.NewDecoder(f).Decode(&state); err != nil {
		return err
	}

	c.mu.Lock()
	c.centroids = state.Centroids
	c.means = state.Means
	c.stddevs = state.Stddevs
	c.accuracy = state.Accuracy
	c.trainedAt = state.TrainedAt
	c.mu.Unlock()
	return nil
}

// --- training internals ---

// syntheticData mirrors the original training recipe: random engagement
// profiles labeled by the argmax of clicks*2 + time/10 plus gaussian noise.
func syntheticData(rng *rand.Rand, n int) ([][]float64, []string) {
	cats := catalog.InterestCategories
	vectors := make([][]float64, 0, n)
	labels := make([]string, 0, n)

	for i := 0; i < n; i++ {
		f := Features{
			Clicks: make(map[string]float64),
			Time:   make(map[string]float64),
		}
		for _, cat := range cats {
			f.Clicks[cat] = float64(rng.Intn(21))
			f.Time[cat] = float64(rng.Intn(300))
		}
		f.TotalSessions = float64(1 + rng.Intn(49))
		f.AvgSessionDuration = float64(60 + rng.Intn(1740))
		f.TotalInteractions = float64(10 + rng.Intn(190))

		best, bestScore := cats[0], math.Inf(-1)
		for _, cat := range cats {
			score := f.Clicks[cat]*2 + f.Time[cat]/10 + rng.NormFloat64()*5
			if score > bestScore {
				best, bestScore = cat, score
			}
		}

		vectors = append(vectors, f.vector())
		labels = append(labels, best)
	}
	return vectors, labels
}

func fitScaler(vectors [][]float64) (means, stddevs []float64) {
	dims := len(vectors[0])
	means = make([]float64, dims)
	stddevs = make([]float64, dims)

	for _, v := range vectors {
		for j, val := range v {
			means[j] += val
		}
	}
	for j := range means {
		means[j] /= float64(len(vectors))
	}
	for _, v := range vectors {
		for j, val := range v {
			d := val - means[j]
			stddevs[j] += d * d
		}
	}
	for j := range stddevs {
		stddevs[j] = math.Sqrt(stddevs[j] / float64(len(vectors)))
		if stddevs[j] == 0 {
			stddevs[j] = 1
		}
	}
	return means, stddevs
}

func scale(v, means, stddevs []float64) []float64 {
	out := make([]float64, len(v))
	for j, val := range v {
		out[j] = (val - means[j]) / stddevs[j]
	}
	return out
}

func nearestLabel(v []float64, centroids map[string][]float64) string {
	best, bestDist := "", math.Inf(1)
	for label, cent := range centroids {
		var d float64
		for j, val := range v {
			diff := val - cent[j]
			d += diff * diff
		}
		if d < bestDist || (d == bestDist && label < best) {
			best, bestDist = label, d
		}
	}
	return best
}
