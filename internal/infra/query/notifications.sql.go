package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotification = `-- name: CreateNotification :exec
INSERT INTO notifications (id, kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateNotificationParams struct {
	ID      uuid.UUID          `json:"id"`
	Kind    string             `json:"kind"`
	Topic   string             `json:"topic"`
	Payload []byte             `json:"payload"`
	RunAt   pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg CreateNotificationParams) error {
	_, err := db.Exec(ctx, createNotification,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
	)
	return err
}
