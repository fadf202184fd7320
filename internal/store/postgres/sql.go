package postgres

// Schema is applied at startup. The demo favors CREATE IF NOT EXISTS over a
// migration tool; production deployments would version these.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id     UUID PRIMARY KEY,
	email       TEXT NOT NULL,
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	last_active TIMESTAMPTZ NOT NULL,
	is_demo     BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS interactions (
	interaction_id   UUID PRIMARY KEY,
	user_id          UUID NOT NULL,
	session_id       TEXT NOT NULL,
	event_type       TEXT NOT NULL,
	content_category TEXT NOT NULL DEFAULT '',
	content_id       TEXT NOT NULL DEFAULT '',
	duration         INT NOT NULL DEFAULT 0,
	ts               TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interactions_user_ts ON interactions (user_id, ts DESC);
CREATE INDEX IF NOT EXISTS idx_interactions_ts ON interactions (ts DESC);

CREATE TABLE IF NOT EXISTS predictions (
	user_id          UUID PRIMARY KEY,
	primary_interest TEXT NOT NULL,
	interest_scores  JSONB NOT NULL,
	confidence       DOUBLE PRECISION NOT NULL,
	features_used    JSONB NOT NULL,
	model_version    TEXT NOT NULL DEFAULT '',
	ts               TIMESTAMPTZ NOT NULL
);
`

const (
	sqlInsertUser = `
		INSERT INTO users (user_id, email, name, created_at, last_active, is_demo)
		VALUES ($1, $2, $3, $4, $5, $6)`

	sqlGetUser = `
		SELECT user_id, email, name, created_at, last_active, is_demo
		FROM users WHERE user_id = $1`

	sqlTouchUser = `UPDATE users SET last_active = $2 WHERE user_id = $1`

	sqlInsertInteraction = `
		INSERT INTO interactions
			(interaction_id, user_id, session_id, event_type, content_category, content_id, duration, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	sqlListInteractions = `
		SELECT interaction_id, user_id, session_id, event_type, content_category, content_id, duration, ts
		FROM interactions WHERE user_id = $1
		ORDER BY ts DESC LIMIT $2`

	sqlRecentInteractions = `
		SELECT interaction_id, user_id, session_id, event_type, content_category, content_id, duration, ts
		FROM interactions ORDER BY ts DESC LIMIT $1`

	sqlUpsertPrediction = `
		INSERT INTO predictions (user_id, primary_interest, interest_scores, confidence, features_used, model_version, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			primary_interest = EXCLUDED.primary_interest,
			interest_scores  = EXCLUDED.interest_scores,
			confidence       = EXCLUDED.confidence,
			features_used    = EXCLUDED.features_used,
			model_version    = EXCLUDED.model_version,
			ts               = EXCLUDED.ts`

	sqlGetPrediction = `
		SELECT user_id, primary_interest, interest_scores, confidence, features_used, model_version, ts
		FROM predictions WHERE user_id = $1`

	sqlRecentPredictions = `
		SELECT user_id, primary_interest, interest_scores, confidence, features_used, model_version, ts
		FROM predictions WHERE ts >= $1
		ORDER BY ts DESC LIMIT $2`
)
