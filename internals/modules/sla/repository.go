package sla

import (
	"context"
	"time"

	"pulsewatch/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Repository reads check and downtime rows from postgres. The engine never
// writes these tables, the monitoring subsystem owns them.
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

const readChecksSQL = `
SELECT monitor_id, checked_at, response_time_ms, status_code, is_up, error_text
FROM monitor_checks
WHERE monitor_id = $1
  AND checked_at >= $2
  AND checked_at < $3
ORDER BY checked_at
`

func (r *Repository) ReadChecks(ctx context.Context, monitorID uuid.UUID, start, end time.Time) ([]CheckSample, error) {
	const op string = "repo.sla.read_checks"

	rows, err := r.pool.Query(ctx, readChecksSQL,
		utils.ToPgUUID(monitorID),
		utils.ToPgTimestamptz(start),
		utils.ToPgTimestamptz(end),
	)
	if err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}
	defer rows.Close()

	var out []CheckSample
	for rows.Next() {
		var (
			id        pgtype.UUID
			checkedAt pgtype.Timestamptz
			respTime  pgtype.Float8
			status    pgtype.Int4
			isUp      bool
			errText   pgtype.Text
		)
		if err := rows.Scan(&id, &checkedAt, &respTime, &status, &isUp, &errText); err != nil {
			return nil, utils.WrapRepoError(op, err, false, r.logger)
		}

		sample := CheckSample{
			MonitorID:  utils.FromPgUUID(id),
			CheckedAt:  utils.FromPgTimestamptz(checkedAt),
			StatusCode: utils.FromPgInt32(status),
			Up:         isUp,
			ErrorText:  utils.FromPgText(errText),
		}
		// response time is only meaningful for successful checks
		if isUp {
			sample.ResponseTimeMs = utils.FromPgFloat8(respTime)
		}
		out = append(out, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}

	return out, nil
}

const readDowntimeSQL = `
SELECT monitor_id, started_at, ended_at, failure_count
FROM downtime_windows
WHERE monitor_id = $1
  AND started_at < $3
  AND (ended_at IS NULL OR ended_at > $2)
ORDER BY started_at
`

func (r *Repository) ReadDowntimeIntervals(ctx context.Context, monitorID uuid.UUID, start, end time.Time) ([]DowntimeInterval, error) {
	const op string = "repo.sla.read_downtime_intervals"

	rows, err := r.pool.Query(ctx, readDowntimeSQL,
		utils.ToPgUUID(monitorID),
		utils.ToPgTimestamptz(start),
		utils.ToPgTimestamptz(end),
	)
	if err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}
	defer rows.Close()

	var out []DowntimeInterval
	for rows.Next() {
		var (
			id        pgtype.UUID
			startedAt pgtype.Timestamptz
			endedAt   pgtype.Timestamptz
			failures  pgtype.Int4
		)
		if err := rows.Scan(&id, &startedAt, &endedAt, &failures); err != nil {
			return nil, utils.WrapRepoError(op, err, false, r.logger)
		}

		iv := DowntimeInterval{
			MonitorID:    utils.FromPgUUID(id),
			StartedAt:    utils.FromPgTimestamptz(startedAt),
			FailureCount: utils.FromPgInt32(failures),
		}
		if endedAt.Valid {
			t := utils.FromPgTimestamptz(endedAt)
			iv.EndedAt = &t
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}

	return out, nil
}
