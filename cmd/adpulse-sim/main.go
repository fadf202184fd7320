// adpulse-sim drives the backend the way the demo frontend does: it
// registers demo users, browses content categories while tracking
// interactions, then pulls predictions, ads and analytics.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"

	zlog "github.com/rs/zerolog/log"

	"github.com/adpulse/adpulse/client"
	"github.com/adpulse/adpulse/internal/catalog"
	"github.com/adpulse/adpulse/internal/logger"
)

func main() {
	var (
		baseURL string
		users   int
		events  int
		train   bool
	)
	flag.StringVar(&baseURL, "base-url", "", "backend base URL (defaults to $ADS_API_BASE_URL)")
	flag.IntVar(&users, "users", 3, "number of demo users to simulate")
	flag.IntVar(&events, "events", 12, "interactions per user")
	flag.BoolVar(&train, "train", true, "retrain the model after the browsing phase")
	flag.Parse()

	logger.Init()

	c := client.New(client.Config{BaseURL: baseURL})
	ctx := context.Background()

	for i := 0; i < users; i++ {
		if err := simulateUser(ctx, c, i, events); err != nil {
			zlog.Error().Err(err).Int("user", i).Msg("simulation failed")
		}
	}

	if train {
		acc, err := c.TrainModel(ctx)
		if err != nil {
			zlog.Error().Err(err).Msg("training failed")
		} else {
			zlog.Info().Float64("accuracy", acc).Msg("model trained")
		}
	}

	info, err := c.GetModelInfo(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("model info failed")
	} else {
		zlog.Info().Str("status", info.Status).Str("model_type", info.ModelType).Msg("model info")
	}

	overview, err := c.GetSystemOverview(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("overview failed")
		return
	}
	zlog.Info().
		Int("users", overview.TotalUsers).
		Int("interactions", overview.TotalInteractions).
		Int("predictions", overview.TotalPredictions).
		Msg("system overview")
}

func simulateUser(ctx context.Context, c *client.Client, n, events int) error {
	session := client.NewSession("", client.PerCall)
	email := fmt.Sprintf("demo%d@example.com", n)
	if err := session.Register(ctx, c, fmt.Sprintf("Demo User %d", n), email); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	userID := session.UserID()
	zlog.Info().Str("user_id", userID).Str("email", email).Msg("registered")

	tracker := client.NewTracker(c, session)
	defer tracker.Close()

	// each simulated user leans toward one favorite category so the
	// predictions have signal to find
	favorite := catalog.ContentCategories[rand.Intn(len(catalog.ContentCategories))]
	for i := 0; i < events; i++ {
		cat := favorite
		if rand.Intn(3) == 0 {
			cat = catalog.ContentCategories[rand.Intn(len(catalog.ContentCategories))]
		}
		contentID := cat.SampleContent[rand.Intn(len(cat.SampleContent))]

		tracker.TrackPageView(ctx, userID, cat.ID, contentID)
		if rand.Intn(2) == 0 {
			tracker.TrackClick(ctx, userID, cat.ID, contentID)
		}
		tracker.TrackTimeSpent(ctx, userID, cat.ID, contentID, 30+rand.Intn(121))
	}
	if err := tracker.Flush(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	pred, err := c.PredictInterests(ctx, userID)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	zlog.Info().
		Str("user_id", userID).
		Str("primary_interest", pred.PrimaryInterest).
		Float64("confidence", pred.Confidence).
		Msg("predicted")

	ads, err := c.GetPersonalizedAds(ctx, userID, 3)
	if err != nil {
		return fmt.Errorf("ads: %w", err)
	}
	for _, ad := range ads {
		zlog.Info().Str("user_id", userID).Str("ad", ad.Title).Str("reason", ad.RecommendationReason).Msg("ad served")
	}

	snap, err := c.GetUserAnalytics(ctx, userID)
	if err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	zlog.Info().
		Str("user_id", userID).
		Int("interactions", snap.InteractionStats.TotalInteractions).
		Int("sessions", snap.InteractionStats.UniqueSessions).
		Msg("analytics")

	return nil
}
