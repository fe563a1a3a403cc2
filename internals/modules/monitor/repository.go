package monitor

import (
	"context"

	"pulsewatch/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type Repository struct {
	pool   *pgxpool.Pool
	logger *zerolog.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *zerolog.Logger) *Repository {
	return &Repository{
		pool:   pool,
		logger: logger,
	}
}

const getMonitorSQL = `
SELECT id, name, url, check_interval_seconds, created_at
FROM monitors
WHERE id = $1
`

func (r *Repository) GetByID(ctx context.Context, monitorID uuid.UUID) (Monitor, error) {
	const op string = "repo.monitor.get_by_id"

	row := r.pool.QueryRow(ctx, getMonitorSQL, utils.ToPgUUID(monitorID))

	var (
		id        pgtype.UUID
		name      pgtype.Text
		url       string
		interval  pgtype.Int4
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &url, &interval, &createdAt); err != nil {
		return Monitor{}, utils.WrapRepoError(op, err, true, r.logger)
	}

	return Monitor{
		ID:               utils.FromPgUUID(id),
		Name:             utils.FromPgText(name),
		Url:              url,
		CheckIntervalSec: utils.FromPgInt32(interval),
		CreatedAt:        utils.FromPgTimestamptz(createdAt),
	}, nil
}

const listMonitorsSQL = `
SELECT id, name, url, check_interval_seconds, created_at
FROM monitors
ORDER BY created_at
LIMIT $1 OFFSET $2
`

func (r *Repository) List(ctx context.Context, limit, offset int32) ([]Monitor, error) {
	const op string = "repo.monitor.list"

	rows, err := r.pool.Query(ctx, listMonitorsSQL, limit, offset)
	if err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}
	defer rows.Close()

	var out []Monitor
	for rows.Next() {
		var (
			id        pgtype.UUID
			name      pgtype.Text
			url       string
			interval  pgtype.Int4
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &name, &url, &interval, &createdAt); err != nil {
			return nil, utils.WrapRepoError(op, err, false, r.logger)
		}
		out = append(out, Monitor{
			ID:               utils.FromPgUUID(id),
			Name:             utils.FromPgText(name),
			Url:              url,
			CheckIntervalSec: utils.FromPgInt32(interval),
			CreatedAt:        utils.FromPgTimestamptz(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}

	return out, nil
}
