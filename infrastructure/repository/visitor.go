package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

const (
	visitorEventsTable     = "visitor_events"
	dailyVisitorStatsTable = "daily_visitor_stats"
)

type VisitorRepository interface {
	InsertEvent(event *domain.VisitorEvent) error
	GetDailyStats(filters *domain.VisitorFilters) ([]*domain.VisitorStat, error)
	GetPeriodTotals(start, end time.Time) (*domain.PeriodTotals, error)
	RollupRange(start, end time.Time) error
}

type visitorRepository struct {
	conn *postgres.Connection
}

func NewVisitorRepository(conn *postgres.Connection) VisitorRepository {
	return &visitorRepository{conn: conn}
}

func (r *visitorRepository) InsertEvent(event *domain.VisitorEvent) error {
	insertSQL, args, err := squirrel.
		Insert(visitorEventsTable).
		Columns("visitor_key", "path", "read_minutes", "occurred_at").
		Values(event.VisitorKey, event.Path, event.ReadMinutes, event.OccurredAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(insertSQL, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetDailyStats retorna as linhas agregadas por dia do período informado
func (r *visitorRepository) GetDailyStats(filters *domain.VisitorFilters) ([]*domain.VisitorStat, error) {
	queryBuilder := squirrel.
		Select("date, unique_visitors, total_visits").
		From(dailyVisitorStatsTable).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": *filters.StartDate})
		}
		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": *filters.EndDate})
		}
	}

	statsSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(statsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.VisitorStat, 0)

	for rows.Next() {
		stat := &domain.VisitorStat{}
		if err := rows.Scan(&stat.Date, &stat.UniqueVisitors, &stat.TotalVisits); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetPeriodTotals soma as linhas diárias do período. A soma de únicos por dia
// é uma aproximação do total de únicos do período: é o que o rollup permite.
func (r *visitorRepository) GetPeriodTotals(start, end time.Time) (*domain.PeriodTotals, error) {
	totalsSQL, args, err := squirrel.
		Select("COALESCE(SUM(total_visits), 0), COALESCE(SUM(unique_visitors), 0)").
		From(dailyVisitorStatsTable).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	totals := &domain.PeriodTotals{}
	row := r.conn.QueryRow(totalsSQL, args...)
	if err := row.Scan(&totals.TotalVisits, &totals.UniqueVisitors); err != nil {
		return nil, err
	}

	return totals, nil
}

// RollupRange agrega os eventos brutos do intervalo em linhas diárias.
// Reprocessar um dia já agregado apenas sobrescreve a linha existente.
func (r *visitorRepository) RollupRange(start, end time.Time) error {
	rollupSQL := fmt.Sprintf(`
		INSERT INTO %s (date, unique_visitors, total_visits)
		SELECT occurred_at::date, COUNT(DISTINCT visitor_key), COUNT(*)
		FROM %s
		WHERE occurred_at >= $1 AND occurred_at < $2
		GROUP BY occurred_at::date
		ON CONFLICT (date) DO UPDATE SET
			unique_visitors = EXCLUDED.unique_visitors,
			total_visits = EXCLUDED.total_visits
	`, dailyVisitorStatsTable, visitorEventsTable)

	_, err := r.conn.Exec(rollupSQL, start, end)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
