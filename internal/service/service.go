// Package service is the application layer behind the REST handlers: user
// registration, interaction ingest, prediction, ad selection and analytics.
package service

import (
	"github.com/adpulse/adpulse/internal/ml"
	"github.com/adpulse/adpulse/internal/store"
)

const (
	// interaction windows mirroring the original service's query limits
	defaultInteractionLimit = 100
	predictionWindow        = 500
	analyticsWindow         = 1000

	DefaultAdLimit = 3
)

type Service struct {
	store      store.Store
	classifier *ml.Classifier
	cache      PredictionCache
	pub        EventPublisher
	clock      Clock
}

func New(st store.Store, classifier *ml.Classifier, cache PredictionCache, pub EventPublisher, clock Clock) *Service {
	if cache == nil {
		cache = nopCache{}
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		store:      st,
		classifier: classifier,
		cache:      cache,
		pub:        pub,
		clock:      clock,
	}
}
