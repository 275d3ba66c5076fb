package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"paintvault_server/config"
	"paintvault_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database handle with additional functionality
type DB struct {
	*bun.DB
}

var instance *DB

// Connect establishes a connection to the database using centralized configuration
func Connect() (*DB, error) {
	logger := config.GetLogger()
	cfg := config.GetConfig()
	dbCfg := cfg.Database

	conn := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port)),
		pgdriver.WithUser(dbCfg.User),
		pgdriver.WithPassword(dbCfg.Password),
		pgdriver.WithDatabase(dbCfg.Name),
		pgdriver.WithInsecure(dbCfg.Insecure),
		pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
		pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(conn)
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())

	// m2m join tables must be registered before any relation query
	db.RegisterModel(
		(*tables.ProductTag)(nil),
		(*tables.ProductAnalogous)(nil),
		(*tables.ProductColorRange)(nil),
		(*tables.ProductProductType)(nil),
	)

	db.AddQueryHook(&slowQueryHook{logger: logger})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &DB{db}, nil
}

// Initialize sets up the global database instance using centralized configuration
func Initialize() error {
	db, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	instance = db
	return nil
}

// GetInstance returns the global database instance
// This is the primary way to access the database throughout the application
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// CloseInstance closes the global database instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// CreateSchema creates all catalog tables if they do not exist.
// Parent tables go first so foreign keys resolve.
func (db *DB) CreateSchema(ctx context.Context) error {
	models := []any{
		(*tables.Vendor)(nil),
		(*tables.ProductLine)(nil),
		(*tables.Product)(nil),
		(*tables.ProductSwatch)(nil),
		(*tables.Locale)(nil),
		(*tables.ProductVariant)(nil),
		(*tables.Tag)(nil),
		(*tables.Analogous)(nil),
		(*tables.ColorRange)(nil),
		(*tables.ProductType)(nil),
		(*tables.ProductTag)(nil),
		(*tables.ProductAnalogous)(nil),
		(*tables.ProductColorRange)(nil),
		(*tables.ProductProductType)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().WithForeignKeys().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	// SKU is the hot lookup during ingest and variant resolution
	if _, err := db.NewCreateIndex().
		Model((*tables.ProductVariant)(nil)).
		Index("product_variants_sku_idx").
		Column("sku").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create sku index: %w", err)
	}
	return nil
}

// slowQueryHook implements bun.QueryHook to flag queries over a second
type slowQueryHook struct {
	logger *gecho.Logger
}

func (h *slowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *slowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	if duration > 1*time.Second {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}
}
