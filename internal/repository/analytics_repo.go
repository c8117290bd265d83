package repository

import (
	"context"
	"time"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// analyticsRepo is the concrete implementation of AnalyticsRepository
type analyticsRepo struct {
	db *database.DB
}

// NewAnalyticsRepo creates a new analytics repository
func NewAnalyticsRepo(db *database.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// Create appends a new analytics event. Events are never mutated afterwards.
func (r *analyticsRepo) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (event_type, entity_type, entity_id, user_id,
		                              session_id, ip_address, user_agent, referrer, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		event.EventType, event.EntityType, event.EntityID, event.UserID,
		event.SessionID, event.IPAddress, event.UserAgent, event.Referrer,
		event.Metadata,
	).Scan(&event.ID, &event.CreatedAt)
	return classifyError(err)
}

// Summary aggregates events since the given instant: totals per event type,
// products ranked by product_view count (ties broken by ascending product id),
// and per-day per-type counts.
func (r *analyticsRepo) Summary(ctx context.Context, since time.Time, topProductsLimit int) (*models.AnalyticsSummary, error) {
	summary := &models.AnalyticsSummary{
		TopProducts:  []models.ProductViews{},
		RecentEvents: []models.DailyEventCount{},
	}

	totalsQuery := `
		SELECT event_type, COUNT(*)
		FROM analytics_events
		WHERE created_at >= $1
		GROUP BY event_type
	`
	rows, err := r.db.QueryContext(ctx, totalsQuery, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventType models.EventType
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, err
		}
		switch eventType {
		case models.EventPageView:
			summary.TotalPageViews = count
		case models.EventProductView:
			summary.TotalProductViews = count
		case models.EventContactForm:
			summary.TotalContactForms = count
		case models.EventDownload:
			summary.TotalDownloads = count
		case models.EventSignup:
			summary.TotalSignups = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topQuery := `
		SELECT p.id, p.name, COUNT(*) AS views
		FROM analytics_events e
		JOIN products p ON p.id = e.entity_id
		WHERE e.event_type = 'product_view'
		  AND e.entity_type = 'product'
		  AND e.created_at >= $1
		GROUP BY p.id, p.name
		ORDER BY views DESC, p.id ASC
		LIMIT $2
	`
	topRows, err := r.db.QueryContext(ctx, topQuery, since, topProductsLimit)
	if err != nil {
		return nil, err
	}
	defer topRows.Close()

	for topRows.Next() {
		var pv models.ProductViews
		if err := topRows.Scan(&pv.ProductID, &pv.ProductName, &pv.Views); err != nil {
			return nil, err
		}
		summary.TopProducts = append(summary.TopProducts, pv)
	}
	if err := topRows.Err(); err != nil {
		return nil, err
	}

	dailyQuery := `
		SELECT event_type, COUNT(*), TO_CHAR(created_at::date, 'YYYY-MM-DD') AS day
		FROM analytics_events
		WHERE created_at >= $1
		GROUP BY event_type, day
		ORDER BY day, event_type
	`
	dailyRows, err := r.db.QueryContext(ctx, dailyQuery, since)
	if err != nil {
		return nil, err
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		var dec models.DailyEventCount
		if err := dailyRows.Scan(&dec.EventType, &dec.Count, &dec.Date); err != nil {
			return nil, err
		}
		summary.RecentEvents = append(summary.RecentEvents, dec)
	}
	return summary, dailyRows.Err()
}

// Count returns the total number of analytics events
func (r *analyticsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analytics_events").Scan(&count)
	return count, err
}
