package db

import (
	"database/sql"
	"time"

	log "github.com/sirupsen/logrus"

	"skylight/models"
)

// Writer archives loaded feed items. It consumes ItemsLoadedEvents from a
// channel so the loader never blocks on disk I/O.
type Writer struct {
	db       *sql.DB
	itemChan chan models.ItemsLoadedEvent
}

func NewWriter(database string, itemChan chan models.ItemsLoadedEvent) (*Writer, error) {
	db, err := connection(database)
	if err != nil {
		return nil, err
	}
	return &Writer{
		db:       db,
		itemChan: itemChan,
	}, nil
}

// Subscribe consumes load events until the channel is closed.
func (writer *Writer) Subscribe() {
	for event := range writer.itemChan {
		if err := archiveItems(writer.db, event.Items); err != nil {
			log.Error("Error archiving items", err)
		}
	}
}

func (writer *Writer) Close() error {
	return writer.db.Close()
}

// archiveItems upserts items by date. The feed re-serves recent dates on
// every load, so conflicts are the common case, not an error.
func archiveItems(db *sql.DB, items []models.Item) error {
	now := time.Now().Unix()

	for _, item := range items {
		// Items without a date cannot be keyed and are not worth archiving
		if item.Date == "" {
			continue
		}

		_, err := db.Exec(`
			INSERT INTO items (date, title, explanation, media_type, url, hdurl, thumbnail_url, copyright, archived_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET
				title = excluded.title,
				explanation = excluded.explanation,
				media_type = excluded.media_type,
				url = excluded.url,
				hdurl = excluded.hdurl,
				thumbnail_url = excluded.thumbnail_url,
				copyright = excluded.copyright,
				archived_at = excluded.archived_at`,
			item.Date,
			item.Title,
			item.Explanation,
			item.MediaType,
			item.URL,
			item.HDURL,
			item.ThumbnailURL,
			item.Copyright,
			now,
		)
		if err != nil {
			log.WithFields(log.Fields{
				"date":  item.Date,
				"error": err,
			}).Error("Error upserting item")
			return err
		}
	}

	log.WithFields(log.Fields{
		"count": len(items),
	}).Info("Archived items")

	return nil
}
