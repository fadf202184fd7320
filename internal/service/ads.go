package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/adpulse/adpulse/internal/catalog"
	"github.com/adpulse/adpulse/internal/domain"
)

// PersonalizedAds returns up to limit ads ranked for the user. The fallback
// chain mirrors the original: cached prediction, stored prediction, fresh
// prediction, and finally random ads with zero confidence when the user has
// no behavior to rank on. limit 0 is a valid request for an empty list.
func (s *Service) PersonalizedAds(ctx context.Context, userID string, limit int) ([]domain.Ad, error) {
	if limit < 0 {
		return nil, domain.ErrValidation("limit must be >= 0")
	}
	if limit == 0 {
		return []domain.Ad{}, nil
	}

	pred, err := s.cache.GetPrediction(ctx, userID)
	if err != nil {
		pred = nil
	}
	if pred == nil {
		pred, err = s.store.GetPrediction(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	if pred == nil {
		pred, err = s.PredictInterests(ctx, userID)
		if err != nil {
			return s.RandomAds(limit), nil
		}
	}

	ads := catalog.AdsForInterest(pred.PrimaryInterest)

	// backfill from next-best interests until the limit is met
	if len(ads) < limit {
		for _, interest := range interestsByScore(pred.InterestScores) {
			if len(ads) >= limit {
				break
			}
			if interest == pred.PrimaryInterest {
				continue
			}
			extra := catalog.AdsForInterest(interest)
			if len(extra) > limit-len(ads) {
				extra = extra[:limit-len(ads)]
			}
			ads = append(ads, extra...)
		}
	}
	if len(ads) > limit {
		ads = ads[:limit]
	}

	for i := range ads {
		ads[i].RecommendationReason = fmt.Sprintf("Based on your interest in %s", pred.PrimaryInterest)
		ads[i].ConfidenceScore = pred.Confidence
	}
	return ads, nil
}

// RandomAds samples without replacement from the whole inventory.
func (s *Service) RandomAds(limit int) []domain.Ad {
	if limit <= 0 {
		return []domain.Ad{}
	}
	all := catalog.AllAds()
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if len(all) > limit {
		all = all[:limit]
	}
	for i := range all {
		all[i].RecommendationReason = domain.RandomRecommendationReason
		all[i].ConfidenceScore = 0.0
	}
	return all
}

func (s *Service) AdCategories() []string {
	return catalog.AdCategories()
}

func (s *Service) AdsByCategory(category string) []domain.Ad {
	return catalog.AdsForInterest(category)
}

func interestsByScore(scores map[string]float64) []string {
	out := make([]string, 0, len(scores))
	for k := range scores {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if scores[out[i]] != scores[out[j]] {
			return scores[out[i]] > scores[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
