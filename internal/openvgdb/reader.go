package openvgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"ludex/internal/catalog"
)

// DB reads an OpenVGDB sqlite file. All access is read-only; the file
// is a published artifact and never changes under us.
type DB struct {
	db *sql.DB
}

// Open connects to the OpenVGDB file at path.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open openvgdb: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open openvgdb: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database connection.
func (o *DB) Close() error {
	if o == nil || o.db == nil {
		return nil
	}
	return o.db.Close()
}

// Release is one matchable ROM-to-release pairing. A release with
// several ROM dumps yields one Release per dump, all sharing the ID.
type Release struct {
	ID    int64
	CRC   string
	Title string
}

// Releases streams every release pairing with a non-empty ROM CRC
// through fn. A handler error stops the scan.
func (o *DB) Releases(ctx context.Context, fn func(Release) error) error {
	rows, err := o.db.QueryContext(ctx,
		`SELECT rel.releaseID, COALESCE(r.romHashCRC, ''), COALESCE(rel.releaseTitleName, '')
		 FROM ROMs r
		 JOIN RELEASES rel ON r.romID = rel.romID
		 WHERE r.romHashCRC IS NOT NULL AND r.romHashCRC != ''
		 ORDER BY rel.releaseID`)
	if err != nil {
		return fmt.Errorf("query releases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var release Release
		if err := rows.Scan(&release.ID, &release.CRC, &release.Title); err != nil {
			return fmt.Errorf("scan release: %w", err)
		}
		if err := fn(release); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate releases: %w", err)
	}
	return nil
}

// Detail returns the descriptive fields of one release. A missing row
// yields an empty enrichment rather than an error.
func (o *DB) Detail(ctx context.Context, releaseID int64) (catalog.Enrichment, error) {
	row := o.db.QueryRowContext(ctx,
		`SELECT releaseDescription, releaseDeveloper, releasePublisher, releaseGenre, releaseDate
		 FROM RELEASES WHERE releaseID = ?`, releaseID)

	var (
		description sql.NullString
		developer   sql.NullString
		publisher   sql.NullString
		genre       sql.NullString
		releaseDate sql.NullString
	)
	err := row.Scan(&description, &developer, &publisher, &genre, &releaseDate)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Enrichment{}, nil
	}
	if err != nil {
		return catalog.Enrichment{}, fmt.Errorf("scan release detail: %w", err)
	}
	return catalog.Enrichment{
		Description: description.String,
		Developer:   developer.String,
		Publisher:   publisher.String,
		Genre:       genre.String,
		ReleaseDate: releaseDate.String,
		ReleaseID:   releaseID,
	}, nil
}
