package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertSearches is a helper test function to insert searches.
func InsertSearches(t *testing.T, exc qrm.Executable, searches ...pgmodels.Search) {
	t.Helper()

	if len(searches) == 0 {
		return
	}

	_, err := table.Search.INSERT(table.Search.AllColumns).MODELS(searches).Exec(exc)
	if err != nil {
		t.Fatal("can't insert searches", err)
	}
}

// InsertListings is a helper test function to insert listings.
func InsertListings(t *testing.T, exc qrm.Executable, listings ...pgmodels.Listing) {
	t.Helper()

	if len(listings) == 0 {
		return
	}

	_, err := table.Listing.INSERT(table.Listing.AllColumns).MODELS(listings).Exec(exc)
	if err != nil {
		t.Fatal("can't insert listings", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Run.INSERT(table.Run.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// GetListings is a helper test function to get all listings.
func GetListings(t *testing.T, queryable qrm.Queryable) []pgmodels.Listing {
	t.Helper()

	listings := []pgmodels.Listing{}
	err := table.Listing.SELECT(table.Listing.AllColumns).
		WHERE(table.Listing.ID.IS_NOT_NULL()).
		ORDER_BY(table.Listing.ID.ASC()).
		Query(queryable, &listings)
	if err != nil {
		t.Fatal("can't get listings", err)
	}

	return listings
}

// GetRuns is a helper test function to get all runs of search.
func GetRuns(t *testing.T, queryable qrm.Queryable, searchID int) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.SearchID.EQ(pg.Int32(int32(searchID)))).
		ORDER_BY(table.Run.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// CleanupData deletes all rows from all tables.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.PriceHistory.DELETE().WHERE(table.PriceHistory.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete price history data", err)
	}

	_, err = table.Listing.DELETE().WHERE(table.Listing.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete listings data", err)
	}

	_, err = table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Search.DELETE().WHERE(table.Search.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete searches data", err)
	}
}
