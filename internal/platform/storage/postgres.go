package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/car-tracker/internal/platform"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for searches, listings, price history and runs.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// GetSearch returns saved search with provided ID.
// It returns platform.ErrSearchNotFound if search doesn't exist.
func (p Postgres) GetSearch(ctx context.Context, id int) (*models.SearchCriteria, error) {
	var search pgmodels.Search
	err := table.Search.SELECT(table.Search.AllColumns).
		WHERE(table.Search.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &search)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrSearchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get search: %w", err)
	}

	return toAppSearch(&search), nil
}

// ActiveSearches returns all active saved searches ordered by ID.
func (p Postgres) ActiveSearches(ctx context.Context) ([]models.SearchCriteria, error) {
	var searches []pgmodels.Search
	err := table.Search.SELECT(table.Search.AllColumns).
		WHERE(table.Search.IsActive.IS_TRUE()).
		ORDER_BY(table.Search.ID.ASC()).
		QueryContext(ctx, p.db, &searches)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get active searches: %w", err)
	}

	return lo.Map(searches, func(_ pgmodels.Search, ix int) models.SearchCriteria {
		return *toAppSearch(&searches[ix])
	}), nil
}

// FindListingByExternalID returns listing with provided marketplace ID.
// It returns platform.ErrListingNotFound if listing doesn't exist.
func (p Postgres) FindListingByExternalID(ctx context.Context, externalID string) (*models.Listing, error) {
	var listing pgmodels.Listing
	err := table.Listing.SELECT(table.Listing.AllColumns).
		WHERE(table.Listing.ExternalID.EQ(pg.String(externalID))).
		QueryContext(ctx, p.db, &listing)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get listing: %w", err)
	}

	return toAppListing(&listing), nil
}

// SaveListing inserts listing without ID or updates existing one. Returns listing ID.
// External ID and first seen time of existing listing are never changed.
func (p Postgres) SaveListing(ctx context.Context, listing *models.Listing) (int, error) {
	return saveListing(ctx, p.db, listing)
}

// SaveListingWithPrice saves listing like SaveListing and appends price history entry of saved listing
// in single transaction. Neither is stored when any write fails.
func (p Postgres) SaveListingWithPrice(ctx context.Context, listing *models.Listing, entry models.PriceHistoryEntry) (int, error) {
	var id int
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var err error
		if id, err = saveListing(ctx, tx, listing); err != nil {
			return err
		}
		entry.ListingID = id
		return appendPriceHistory(ctx, tx, entry)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// AppendPriceHistory adds price history entry.
func (p Postgres) AppendPriceHistory(ctx context.Context, entry models.PriceHistoryEntry) error {
	return appendPriceHistory(ctx, p.db, entry)
}

// PriceHistory returns listing price history from the oldest entry.
func (p Postgres) PriceHistory(ctx context.Context, listingID int) ([]models.PriceHistoryEntry, error) {
	var entries []pgmodels.PriceHistory
	err := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(table.PriceHistory.ListingID.EQ(pg.Int32(int32(listingID)))).
		ORDER_BY(table.PriceHistory.RecordedAt.ASC(), table.PriceHistory.ID.ASC()).
		QueryContext(ctx, p.db, &entries)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get price history: %w", err)
	}

	return lo.Map(entries, func(_ pgmodels.PriceHistory, ix int) models.PriceHistoryEntry {
		return toAppPriceHistory(&entries[ix])
	}), nil
}

// SaveRun inserts run without ID or updates existing one. Returns run ID.
func (p Postgres) SaveRun(ctx context.Context, run *models.RunRecord) (int, error) {
	dbRun := toDBRun(run)

	if run.ID == 0 {
		err := table.Run.INSERT(table.Run.MutableColumns).
			MODEL(dbRun).
			RETURNING(table.Run.ID).
			QueryContext(ctx, p.db, dbRun)
		if err != nil {
			return 0, fmt.Errorf("can't insert run: %w", err)
		}
		return int(dbRun.ID), nil
	}

	columnList := table.Run.MutableColumns.Except(table.Run.SearchID, table.Run.StartedAt)

	result, err := table.Run.UPDATE(columnList).
		MODEL(dbRun).
		WHERE(table.Run.ID.EQ(pg.Int32(dbRun.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		return 0, fmt.Errorf("can't update run: %w", err)
	} else if rowsAffected == 0 {
		return 0, fmt.Errorf("can't update run: %w", platform.ErrRunNotFound)
	}

	return run.ID, nil
}

// LatestRun returns the most recently started run of search.
// It returns platform.ErrRunNotFound if search has no runs.
func (p Postgres) LatestRun(ctx context.Context, searchID int) (*models.RunRecord, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.SearchID.EQ(pg.Int32(int32(searchID)))).
		ORDER_BY(table.Run.StartedAt.DESC(), table.Run.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &run)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get latest run: %w", err)
	}

	return toAppRun(&run), nil
}

func saveListing(ctx context.Context, db qrm.DB, listing *models.Listing) (int, error) {
	dbListing := toDBListing(listing)

	if listing.ID == 0 {
		err := table.Listing.INSERT(table.Listing.MutableColumns).
			MODEL(dbListing).
			RETURNING(table.Listing.ID).
			QueryContext(ctx, db, dbListing)
		if err != nil {
			return 0, fmt.Errorf("can't insert listing: %w", err)
		}
		return int(dbListing.ID), nil
	}

	columnList := table.Listing.MutableColumns.Except(table.Listing.ExternalID, table.Listing.FirstSeen)

	result, err := table.Listing.UPDATE(columnList).
		MODEL(dbListing).
		WHERE(table.Listing.ID.EQ(pg.Int32(dbListing.ID))).
		ExecContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("can't update listing: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		return 0, fmt.Errorf("can't update listing: %w", err)
	} else if rowsAffected == 0 {
		return 0, fmt.Errorf("can't update listing: %w", platform.ErrListingNotFound)
	}

	return listing.ID, nil
}

func appendPriceHistory(ctx context.Context, db qrm.DB, entry models.PriceHistoryEntry) error {
	_, err := table.PriceHistory.INSERT(table.PriceHistory.MutableColumns).
		MODEL(toDBPriceHistory(&entry)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert price history entry: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
