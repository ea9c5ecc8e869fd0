package db

import (
	"database/sql"
	"time"

	sb "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"
)

// Tidy removes archived items older than the retention window
func Tidy(database string, retentionDays int) error {
	db, err := connection(database)
	if err != nil {
		return err
	}
	defer db.Close()

	return tidy(db, retentionDays)
}

func tidy(db *sql.DB, retentionDays int) error {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour).Unix()
	deleteItems := sb.NewDeleteBuilder()
	sql, args := deleteItems.DeleteFrom("items").Where(deleteItems.LessEqualThan("archived_at", cutoff)).BuildWithFlavor(sb.Flavor(sb.SQLite))

	log.WithFields(log.Fields{
		"sql":  sql,
		"args": args,
	}).Info("Tidying database")

	_, err := db.Exec(sql, args...)
	return err
}
