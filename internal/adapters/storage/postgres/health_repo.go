package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"goat-tracker/internal/domain/health"

	"github.com/jmoiron/sqlx"
)

type HealthRepo struct {
	db *sqlx.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: wrap(db)}
}

type healthRow struct {
	ID           string          `db:"id"`
	GoatID       string          `db:"goat_id"`
	Type         string          `db:"record_type"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	Date         time.Time       `db:"date"`
	NextDueDate  sql.NullTime    `db:"next_due_date"`
	Cost         sql.NullFloat64 `db:"cost"`
	Veterinarian string          `db:"veterinarian"`
	CreatedAt    time.Time       `db:"created_at"`
	CreatedBy    string          `db:"created_by"`
}

const healthColumns = `
	id, goat_id, record_type, title, description,
	date, next_due_date, cost, veterinarian,
	created_at, created_by`

func (row healthRow) toDomain() health.Record {
	return health.Record{
		ID:           row.ID,
		GoatID:       row.GoatID,
		Type:         health.RecordType(row.Type),
		Title:        row.Title,
		Description:  row.Description,
		Date:         row.Date,
		NextDueDate:  timePtr(row.NextDueDate),
		Cost:         floatPtr(row.Cost),
		Veterinarian: row.Veterinarian,
		CreatedAt:    row.CreatedAt,
		CreatedBy:    row.CreatedBy,
	}
}

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO health_records (`+healthColumns+`)
		VALUES (
			:id, :goat_id, :record_type, :title, :description,
			:date, :next_due_date, :cost, :veterinarian,
			:created_at, :created_by
		)
	`, healthRow{
		ID:           rec.ID,
		GoatID:       rec.GoatID,
		Type:         string(rec.Type),
		Title:        rec.Title,
		Description:  rec.Description,
		Date:         rec.Date,
		NextDueDate:  nullTime(rec.NextDueDate),
		Cost:         nullFloat(rec.Cost),
		Veterinarian: rec.Veterinarian,
		CreatedAt:    rec.CreatedAt,
		CreatedBy:    rec.CreatedBy,
	})
	return err
}

func (r *HealthRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]health.Record, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}
	return r.list(ctx, `created_by = $1`, ownerUserID)
}

func (r *HealthRepo) ListByGoat(ctx context.Context, goatID string) ([]health.Record, error) {
	goatID = strings.TrimSpace(goatID)
	if goatID == "" {
		return nil, nil
	}
	return r.list(ctx, `goat_id = $1`, goatID)
}

func (r *HealthRepo) list(ctx context.Context, where string, arg string) ([]health.Record, error) {
	var rows []healthRow
	query := `SELECT ` + healthColumns + ` FROM health_records WHERE ` + where + ` ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, err
	}

	out := make([]health.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
