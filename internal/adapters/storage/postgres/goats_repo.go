package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"goat-tracker/internal/domain/goats"

	"github.com/jmoiron/sqlx"
)

type GoatsRepo struct {
	db *sqlx.DB
}

func NewGoatsRepo(db *sql.DB) *GoatsRepo {
	return &GoatsRepo{db: wrap(db)}
}

type goatRow struct {
	ID             string          `db:"id"`
	TagNumber      string          `db:"tag_number"`
	OwnerName      string          `db:"owner_name"`
	Gender         string          `db:"gender"`
	GoatPhotoURL   string          `db:"goat_photo_url"`
	TagPhotoURL    string          `db:"tag_photo_url"`
	BirthDate      sql.NullTime    `db:"birth_date"`
	Weight         sql.NullFloat64 `db:"weight"`
	HealthStatus   string          `db:"health_status"`
	BreedingStatus string          `db:"breeding_status"`
	SireID         string          `db:"sire_id"`
	DamID          string          `db:"dam_id"`
	Notes          string          `db:"notes"`
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}

const goatColumns = `
	id, tag_number, owner_name, gender,
	goat_photo_url, tag_photo_url,
	birth_date, weight,
	health_status, breeding_status,
	sire_id, dam_id, notes,
	created_at, created_by`

func toGoatRow(g goats.Goat) goatRow {
	return goatRow{
		ID:             g.ID,
		TagNumber:      g.TagNumber,
		OwnerName:      g.OwnerName,
		Gender:         string(g.Gender),
		GoatPhotoURL:   g.GoatPhotoURL,
		TagPhotoURL:    g.TagPhotoURL,
		BirthDate:      nullTime(g.BirthDate),
		Weight:         nullFloat(g.Weight),
		HealthStatus:   string(g.HealthStatus),
		BreedingStatus: string(g.BreedingStatus),
		SireID:         g.SireID,
		DamID:          g.DamID,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt,
		CreatedBy:      g.CreatedBy,
	}
}

func (row goatRow) toDomain() goats.Goat {
	return goats.Goat{
		ID:             row.ID,
		TagNumber:      row.TagNumber,
		OwnerName:      row.OwnerName,
		Gender:         goats.Gender(row.Gender),
		GoatPhotoURL:   row.GoatPhotoURL,
		TagPhotoURL:    row.TagPhotoURL,
		BirthDate:      timePtr(row.BirthDate),
		Weight:         floatPtr(row.Weight),
		HealthStatus:   goats.HealthStatus(row.HealthStatus),
		BreedingStatus: goats.BreedingStatus(row.BreedingStatus),
		SireID:         row.SireID,
		DamID:          row.DamID,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
		CreatedBy:      row.CreatedBy,
	}
}

func (r *GoatsRepo) Create(ctx context.Context, g goats.Goat) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO goats (`+goatColumns+`)
		VALUES (
			:id, :tag_number, :owner_name, :gender,
			:goat_photo_url, :tag_photo_url,
			:birth_date, :weight,
			:health_status, :breeding_status,
			:sire_id, :dam_id, :notes,
			:created_at, :created_by
		)
	`, toGoatRow(g))
	return err
}

func (r *GoatsRepo) Update(ctx context.Context, g goats.Goat) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE goats
		SET
			tag_number = :tag_number,
			owner_name = :owner_name,
			goat_photo_url = :goat_photo_url,
			tag_photo_url = :tag_photo_url,
			birth_date = :birth_date,
			weight = :weight,
			health_status = :health_status,
			breeding_status = :breeding_status,
			notes = :notes
		WHERE id = :id
	`, toGoatRow(g))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", goats.ErrNotFound, g.ID)
	}
	return nil
}

func (r *GoatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", goats.ErrNotFound, id)
	}
	return nil
}

func (r *GoatsRepo) GetByID(ctx context.Context, id string) (goats.Goat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return goats.Goat{}, goats.ErrNotFound
	}

	var row goatRow
	err := r.db.GetContext(ctx, &row, `SELECT `+goatColumns+` FROM goats WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return goats.Goat{}, fmt.Errorf("%w: %s", goats.ErrNotFound, id)
		}
		return goats.Goat{}, err
	}
	return row.toDomain(), nil
}

func (r *GoatsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter goats.ListFilter) ([]goats.Goat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	where := []string{"created_by = $1"}
	args := []any{ownerUserID}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		add("tag_number ILIKE '%%' || $%d || '%%'", tag)
	}
	if filter.Gender != "" {
		add("gender = $%d", string(filter.Gender))
	}
	if filter.HealthStatus != "" {
		add("health_status = $%d", string(filter.HealthStatus))
	}
	if filter.BreedingStatus != "" {
		add("breeding_status = $%d", string(filter.BreedingStatus))
	}

	var rows []goatRow
	query := `SELECT ` + goatColumns + ` FROM goats WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]goats.Goat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
