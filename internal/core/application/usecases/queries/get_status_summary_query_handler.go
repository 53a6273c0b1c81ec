package queries

import (
	"context"

	"workshop/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler counts work orders grouped by status,
// straight from the database.
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusSummaryQueryHandler creates a handler for status summaries.
// Requires a GORM database connection for query execution.
func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle executes the per-status count. Statuses with no orders are absent
// from the result; rows come back in status order for stable output.
func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusSummaryQuery,
) ([]GetStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]GetStatusSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM work_orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		summary = append(summary, GetStatusSummaryQueryResponse{
			Status: workorder.Status(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
