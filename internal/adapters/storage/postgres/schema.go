package postgres

// Schema es el DDL de las tres tablas del rebaño.
// Las fechas de negocio son DATE; created_at es TIMESTAMPTZ.
const Schema = `
CREATE TABLE IF NOT EXISTS goats (
    id              TEXT PRIMARY KEY,
    tag_number      TEXT NOT NULL,
    owner_name      TEXT NOT NULL,
    gender          TEXT NOT NULL CHECK (gender IN ('Male', 'Female')),
    goat_photo_url  TEXT NOT NULL DEFAULT '',
    tag_photo_url   TEXT NOT NULL DEFAULT '',
    birth_date      DATE NULL,
    weight          DOUBLE PRECISION NULL,
    health_status   TEXT NOT NULL DEFAULT '',
    breeding_status TEXT NOT NULL DEFAULT '',
    sire_id         TEXT NOT NULL DEFAULT '',
    dam_id          TEXT NOT NULL DEFAULT '',
    notes           TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goats_created_by ON goats(created_by);

CREATE TABLE IF NOT EXISTS health_records (
    id            TEXT PRIMARY KEY,
    goat_id       TEXT NOT NULL REFERENCES goats(id) ON DELETE CASCADE,
    record_type   TEXT NOT NULL,
    title         TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    date          DATE NOT NULL,
    next_due_date DATE NULL,
    cost          DOUBLE PRECISION NULL CHECK (cost IS NULL OR cost >= 0),
    veterinarian  TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_health_records_created_by ON health_records(created_by);
CREATE INDEX IF NOT EXISTS idx_health_records_goat_id ON health_records(goat_id);

CREATE TABLE IF NOT EXISTS breeding_records (
    id                TEXT PRIMARY KEY,
    doe_id            TEXT NOT NULL REFERENCES goats(id) ON DELETE CASCADE,
    buck_id           TEXT NOT NULL REFERENCES goats(id) ON DELETE CASCADE,
    breeding_date     DATE NOT NULL,
    expected_due_date DATE NULL,
    actual_birth_date DATE NULL,
    pregnancy_status  TEXT NOT NULL DEFAULT 'Bred'
                      CHECK (pregnancy_status IN ('Bred', 'Confirmed', 'Failed', 'Birthed')),
    number_of_kids    INTEGER NULL CHECK (number_of_kids IS NULL OR number_of_kids >= 0),
    notes             TEXT NOT NULL DEFAULT '',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_breeding_records_created_by ON breeding_records(created_by);
`
