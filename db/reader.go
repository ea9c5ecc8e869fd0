package db

import (
	"database/sql"
	"fmt"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"

	"skylight/models"
	"skylight/query"
)

type Reader struct {
	db *sql.DB
}

func NewReader(database string) (*Reader, error) {
	// Open in read-only mode with optimized settings
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?mode=ro&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", database))
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Set connection pool settings for reader
	db.SetMaxOpenConns(4)            // Allow multiple concurrent readers
	db.SetMaxIdleConns(2)            // Keep some connections ready
	db.SetConnMaxLifetime(time.Hour) // Recreate connections after an hour
	db.SetConnMaxIdleTime(time.Hour) // Close idle connections after an hour

	// Configure additional pragmas for better read performance
	if _, err := db.Exec(`
		PRAGMA busy_timeout = 5000;
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -32000; -- 32MB cache
		PRAGMA temp_store = MEMORY;
		PRAGMA mmap_size = 268435456; -- 256MB memory mapped I/O
	`); err != nil {
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	return &Reader{
		db: db,
	}, nil
}

// GetArchived returns archived items, newest date first, applying the given
// filters. beforeID is a cursor: only rows with a smaller id are returned,
// 0 means start from the top.
func (reader *Reader) GetArchived(filters []query.FilterStrategy, limit int, beforeID int64) ([]models.Item, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("date", "title", "explanation", "media_type", "url", "hdurl", "thumbnail_url", "copyright").From("items")

	if beforeID != 0 {
		sb.Where(sb.LessThan("id", beforeID))
	}

	for _, filter := range filters {
		filter.ApplyFilter(sb)
	}

	sb.OrderBy("date").Desc()
	sb.Limit(limit)

	sql, args := sb.BuildWithFlavor(sqlbuilder.Flavor(sqlbuilder.SQLite))

	rows, err := reader.db.Query(sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.Date, &item.Title, &item.Explanation, &item.MediaType, &item.URL, &item.HDURL, &item.ThumbnailURL, &item.Copyright); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// GetItemCountPerTime returns how many archived items fall into each day,
// month or year, keyed on the item date.
func (reader *Reader) GetItemCountPerTime(timeAgg string) ([]models.ItemsAggregatedByTime, error) {
	var sqlFormat string
	var timeParse func(string) (time.Time, error)

	switch timeAgg {
	case "day":
		sqlFormat = `STRFTIME('%Y-%m-%d', date)`
		timeParse = func(str string) (time.Time, error) {
			return time.Parse("2006-01-02", str)
		}
	case "month":
		sqlFormat = `STRFTIME('%Y-%m', date)`
		timeParse = func(str string) (time.Time, error) {
			return time.Parse("2006-01", str)
		}
	case "year":
		sqlFormat = `STRFTIME('%Y', date)`
		timeParse = func(str string) (time.Time, error) {
			return time.Parse("2006", str)
		}
	default:
		sqlFormat = `STRFTIME('%Y-%m', date)`
		timeParse = func(str string) (time.Time, error) {
			return time.Parse("2006-01", str)
		}
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(sqlFormat, "count(*) as count").From("items")
	sb.GroupBy(sqlFormat)
	sb.OrderBy(sqlFormat).Asc()

	sql, args := sb.BuildWithFlavor(sqlbuilder.Flavor(sqlbuilder.SQLite))

	rows, err := reader.db.Query(sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itemCounts []models.ItemsAggregatedByTime

	for rows.Next() {
		var sqlTime string
		var itemCount models.ItemsAggregatedByTime

		if err := rows.Scan(&sqlTime, &itemCount.Count); err != nil {
			continue // Skip this row
		}

		itemTime, err := timeParse(sqlTime)
		if err == nil {
			itemCount.Time = itemTime
		}
		itemCounts = append(itemCounts, itemCount)
	}

	return itemCounts, nil
}

func (reader *Reader) Close() error {
	return reader.db.Close()
}
