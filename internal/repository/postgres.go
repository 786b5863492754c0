package repository

import (
	"context"
	"fmt"
	"time"

	"estate-search/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepository is the optional database collaborator: it loads raw
// listing rows for the normalizer and records executed searches. The
// engine itself never touches the database.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadRawListings fetches all project rows as raw records in catalog
// order. Rows come back as generic maps so the normalizer owns all field
// resolution and coercion, exactly as it does for the seed catalog.
func (r *PostgresRepository) LoadRawListings(ctx context.Context) ([]model.RawListing, error) {
	query := `
		SELECT id, name, city, location, property_type, bedrooms,
		       price_min, price_max, developer, amenities,
		       possession_date, description
		FROM projects
		ORDER BY id
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	var raw []model.RawListing
	for rows.Next() {
		record := map[string]any{}
		if err := rows.MapScan(record); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		raw = append(raw, model.RawListing(record))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}

	return raw, nil
}

// LogSearch records an executed search for later analysis.
func (r *PostgresRepository) LogSearch(
	ctx context.Context,
	query string,
	intent *model.QueryIntent,
	outcome model.Outcome,
	resultCount int,
	tookMs int64,
) error {
	logQuery := `
		INSERT INTO search_logs (query, cities, property_types, budget_max, outcome, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var budget *float64
	if intent != nil && intent.HasBudget {
		budget = &intent.BudgetMax
	}

	var cities, types []string
	if intent != nil {
		cities = intent.Cities
		types = intent.PropertyTypes
	}

	_, err := r.db.ExecContext(ctx, logQuery,
		query,
		pq.StringArray(cities),
		pq.StringArray(types),
		budget,
		string(outcome),
		resultCount,
		tookMs,
	)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}
