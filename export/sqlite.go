package export

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snps (
	sequence_id   TEXT    NOT NULL,
	position      INTEGER NOT NULL,
	ref_nt        TEXT    NOT NULL,
	alt_nt        TEXT    NOT NULL,
	mutation_type TEXT    NOT NULL,
	freq          REAL
);
CREATE INDEX IF NOT EXISTS snps_position ON snps (position);
`

// OpenSQLite opens (creating if needed) a SQLite database with the snps
// table.
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, pfx.Err(err)
	}

	return db, nil
}

// InsertRows appends rows to the snps table in one transaction.
func InsertRows(db *sqlx.DB, rows []Row) error {
	tx, err := db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	for _, row := range rows {
		if _, err := tx.NamedExec(`INSERT INTO snps (sequence_id, position, ref_nt, alt_nt, mutation_type, freq)
			VALUES (:sequence_id, :position, :ref_nt, :alt_nt, :mutation_type, :freq)`, row); err != nil {
			tx.Rollback()
			return pfx.Err(fmt.Errorf("%s:%d: %w", row.SequenceID, row.Position, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// SelectRows returns every row of the snps table, ordered by sequence and
// position.
func SelectRows(db *sqlx.DB) ([]Row, error) {
	out := []Row{}
	if err := db.Select(&out, `SELECT sequence_id, position, ref_nt, alt_nt, mutation_type, freq FROM snps ORDER BY sequence_id, position, alt_nt`); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// WriteSQLite writes rows into the snps table of the database at path.
func WriteSQLite(path string, rows []Row) error {
	db, err := OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return InsertRows(db, rows)
}
