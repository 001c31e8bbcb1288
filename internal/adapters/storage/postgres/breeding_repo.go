package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"goat-tracker/internal/domain/breeding"

	"github.com/jmoiron/sqlx"
)

type BreedingRepo struct {
	db *sqlx.DB
}

func NewBreedingRepo(db *sql.DB) *BreedingRepo {
	return &BreedingRepo{db: wrap(db)}
}

type breedingRow struct {
	ID              string        `db:"id"`
	DoeID           string        `db:"doe_id"`
	BuckID          string        `db:"buck_id"`
	BreedingDate    time.Time     `db:"breeding_date"`
	ExpectedDueDate sql.NullTime  `db:"expected_due_date"`
	ActualBirthDate sql.NullTime  `db:"actual_birth_date"`
	Status          string        `db:"pregnancy_status"`
	NumberOfKids    sql.NullInt64 `db:"number_of_kids"`
	Notes           string        `db:"notes"`
	CreatedAt       time.Time     `db:"created_at"`
	CreatedBy       string        `db:"created_by"`

	// Solo en lecturas (LEFT JOIN goats).
	DoeTag    sql.NullString `db:"doe_tag"`
	DoeOwner  sql.NullString `db:"doe_owner"`
	BuckTag   sql.NullString `db:"buck_tag"`
	BuckOwner sql.NullString `db:"buck_owner"`
}

// Los datos de hembra y macho salen de goats al leer; si el animal ya no existe quedan nil.
const breedingSelect = `
	SELECT
		b.id, b.doe_id, b.buck_id,
		b.breeding_date, b.expected_due_date, b.actual_birth_date,
		b.pregnancy_status, b.number_of_kids, b.notes,
		b.created_at, b.created_by,
		d.tag_number AS doe_tag, d.owner_name AS doe_owner,
		k.tag_number AS buck_tag, k.owner_name AS buck_owner
	FROM breeding_records b
	LEFT JOIN goats d ON d.id = b.doe_id
	LEFT JOIN goats k ON k.id = b.buck_id`

func toBreedingRow(rec breeding.Record) breedingRow {
	row := breedingRow{
		ID:              rec.ID,
		DoeID:           rec.DoeID,
		BuckID:          rec.BuckID,
		BreedingDate:    rec.BreedingDate,
		ExpectedDueDate: nullTime(rec.ExpectedDueDate),
		ActualBirthDate: nullTime(rec.ActualBirthDate),
		Status:          string(rec.Status),
		Notes:           rec.Notes,
		CreatedAt:       rec.CreatedAt,
		CreatedBy:       rec.CreatedBy,
	}
	if rec.NumberOfKids != nil {
		row.NumberOfKids = sql.NullInt64{Int64: int64(*rec.NumberOfKids), Valid: true}
	}
	return row
}

func (row breedingRow) toDomain() breeding.Record {
	rec := breeding.Record{
		ID:              row.ID,
		DoeID:           row.DoeID,
		BuckID:          row.BuckID,
		BreedingDate:    row.BreedingDate,
		ExpectedDueDate: timePtr(row.ExpectedDueDate),
		ActualBirthDate: timePtr(row.ActualBirthDate),
		Status:          breeding.PregnancyStatus(row.Status),
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		CreatedBy:       row.CreatedBy,
	}
	if row.NumberOfKids.Valid {
		n := int(row.NumberOfKids.Int64)
		rec.NumberOfKids = &n
	}
	if row.DoeTag.Valid {
		rec.Doe = &breeding.Party{TagNumber: row.DoeTag.String, OwnerName: row.DoeOwner.String}
	}
	if row.BuckTag.Valid {
		rec.Buck = &breeding.Party{TagNumber: row.BuckTag.String, OwnerName: row.BuckOwner.String}
	}
	return rec
}

func (r *BreedingRepo) Create(ctx context.Context, rec breeding.Record) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO breeding_records (
			id, doe_id, buck_id,
			breeding_date, expected_due_date, actual_birth_date,
			pregnancy_status, number_of_kids, notes,
			created_at, created_by
		) VALUES (
			:id, :doe_id, :buck_id,
			:breeding_date, :expected_due_date, :actual_birth_date,
			:pregnancy_status, :number_of_kids, :notes,
			:created_at, :created_by
		)
	`, toBreedingRow(rec))
	return err
}

func (r *BreedingRepo) Update(ctx context.Context, rec breeding.Record) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE breeding_records
		SET
			expected_due_date = :expected_due_date,
			actual_birth_date = :actual_birth_date,
			pregnancy_status = :pregnancy_status,
			number_of_kids = :number_of_kids,
			notes = :notes
		WHERE id = :id
	`, toBreedingRow(rec))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", breeding.ErrNotFound, rec.ID)
	}
	return nil
}

func (r *BreedingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeding_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", breeding.ErrNotFound, id)
	}
	return nil
}

func (r *BreedingRepo) GetByID(ctx context.Context, id string) (breeding.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeding.Record{}, breeding.ErrNotFound
	}

	var row breedingRow
	if err := r.db.GetContext(ctx, &row, breedingSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeding.Record{}, fmt.Errorf("%w: %s", breeding.ErrNotFound, id)
		}
		return breeding.Record{}, err
	}
	return row.toDomain(), nil
}

func (r *BreedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.Record, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	var rows []breedingRow
	err := r.db.SelectContext(ctx, &rows,
		breedingSelect+` WHERE b.created_by = $1 ORDER BY b.breeding_date DESC, b.created_at DESC`,
		ownerUserID,
	)
	if err != nil {
		return nil, err
	}

	out := make([]breeding.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
