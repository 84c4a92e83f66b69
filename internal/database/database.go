package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Database, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create tables manually with raw SQL
	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS imports (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		filename TEXT NOT NULL,
		format TEXT,
		total_rows INTEGER DEFAULT 0,
		total_cols INTEGER DEFAULT 0,
		unique_products INTEGER DEFAULT 0,
		removed_rows INTEGER DEFAULT 0,
		removed_cols INTEGER DEFAULT 0,
		passed INTEGER DEFAULT 0,
		failed INTEGER DEFAULT 0,
		warned INTEGER DEFAULT 0,
		detected_features TEXT,
		processing_time_ms BIGINT DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		import_id UUID,
		title TEXT NOT NULL,
		asin TEXT,
		price DECIMAL(10,2) DEFAULT 0,
		compare_price DECIMAL(10,2) DEFAULT 0,
		sell_price DECIMAL(10,2) DEFAULT 0,
		profit DECIMAL(10,2) DEFAULT 0,
		profit_percent DECIMAL(10,1) DEFAULT 0,
		image TEXT,
		description TEXT,
		vendor TEXT,
		category TEXT,
		tags TEXT,
		status TEXT DEFAULT 'Active',
		quantity INTEGER DEFAULT 999,
		handle TEXT,
		stock_status TEXT DEFAULT 'UNKNOWN',
		gates TEXT,
		gate_count INTEGER DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS issues (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		product_id UUID NOT NULL,
		gate TEXT NOT NULL,
		severity TEXT NOT NULL,
		explanation TEXT NOT NULL,
		is_resolved BOOLEAN DEFAULT false,
		resolved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_products_import_id ON products(import_id);
	CREATE INDEX IF NOT EXISTS idx_products_asin ON products(asin);
	CREATE INDEX IF NOT EXISTS idx_issues_product_id ON issues(product_id);
	`

	for _, stmt := range strings.Split(createTablesSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return &Database{DB: db}, nil
}
