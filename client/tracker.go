package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const maxInFlightTracks = 32

// Tracker sends interaction telemetry as detached fire-and-forget posts.
// Track never blocks the caller and never returns an error; delivery
// failures are logged and dropped. In-flight sends are bounded; when the
// bound is hit new events are dropped rather than queued.
type Tracker struct {
	c       *Client
	session *Session

	wg  sync.WaitGroup
	sem chan struct{}

	closeOnce sync.Once
	closed    chan struct{}
}

func NewTracker(c *Client, session *Session) *Tracker {
	return &Tracker{
		c:       c,
		session: session,
		sem:     make(chan struct{}, maxInFlightTracks),
		closed:  make(chan struct{}),
	}
}

// Track records one event for userID. Anonymous callers (empty userID) are
// dropped silently, matching the frontend's behavior before login.
func (t *Tracker) Track(ctx context.Context, userID, eventType, category, contentID string, duration int) {
	if userID == "" || eventType == "" {
		return
	}
	select {
	case <-t.closed:
		return
	default:
	}
	select {
	case t.sem <- struct{}{}:
	default:
		zlog.Debug().Str("event_type", eventType).Msg("tracker saturated, event dropped")
		return
	}

	body := Interaction{
		SessionID:       t.session.SessionID(),
		EventType:       eventType,
		ContentCategory: category,
		ContentID:       contentID,
		Duration:        duration,
	}
	path := "/users/" + url.PathEscape(userID) + "/interactions"

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() { <-t.sem }()

		// detached from the caller's context on purpose: page navigation
		// must not cancel telemetry already handed off
		sendCtx, cancel := context.WithTimeout(context.Background(), t.c.cfg.WriteTimeout)
		defer cancel()

		if err := t.c.do(sendCtx, http.MethodPost, path, body, nil); err != nil {
			zlog.Debug().
				Err(err).
				Str("event_type", eventType).
				Str("content_category", category).
				Msg("interaction track failed")
		}
	}()
}

func (t *Tracker) TrackPageView(ctx context.Context, userID, category, contentID string) {
	t.Track(ctx, userID, EventPageView, category, contentID, 0)
}

func (t *Tracker) TrackClick(ctx context.Context, userID, category, contentID string) {
	t.Track(ctx, userID, EventClick, category, contentID, 0)
}

func (t *Tracker) TrackTimeSpent(ctx context.Context, userID, category, contentID string, seconds int) {
	t.Track(ctx, userID, EventTimeSpent, category, contentID, seconds)
}

// Flush waits for in-flight sends or the context, whichever first.
func (t *Tracker) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits briefly for stragglers.
func (t *Tracker) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err = t.Flush(ctx)
	})
	return err
}
