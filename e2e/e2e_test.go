package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/MichalMitros/car-tracker/cmd/tracker/config"
	"github.com/MichalMitros/car-tracker/e2e/helpers"
	"github.com/MichalMitros/car-tracker/internal/api"
	"github.com/MichalMitros/car-tracker/internal/extractor"
	"github.com/MichalMitros/car-tracker/internal/fetcher"
	"github.com/MichalMitros/car-tracker/internal/handler"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/car-tracker/internal/platform/storage"
	pgmodels "github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/car-tracker/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/car-tracker/internal/query"
	"github.com/MichalMitros/car-tracker/internal/reconciler"
	"github.com/MichalMitros/car-tracker/internal/recorder"
	"github.com/MichalMitros/car-tracker/internal/scheduler"
	"github.com/MichalMitros/car-tracker/internal/tracker"
	"github.com/MichalMitros/car-tracker/pkg/v1/commander"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const exchange = "car-tracker-e2e"

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" || os.Getenv("RABBITMQ_URL") == "" {
		t.Skip("please provide DATABASE_URL and RABBITMQ_URL environment variables")
	}
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	if s.cfg, err = config.Load(); err != nil {
		s.Require().FailNow("can't load config", err)
	}

	if s.connection, err = amqp.Dial(s.cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	helpers.DeclareRMQExchange(s.T(), s.channel, exchange)

	if s.db, err = sql.Open("postgres", s.cfg.DatabaseURL); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
	storagetesting.CleanupData(s.T(), s.db)
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

func (s *E2ETestSuite) TestSearchTracking() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prepare test RMQ queue
	queue := fmt.Sprintf("car-tracker-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("car-tracker.run.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), s.channel, queue, exchange, routingKey)

	// Prepare test data
	searchID := rand.Intn(100000) + 1
	storagetesting.InsertSearches(s.T(), s.db, pgmodels.Search{
		ID:       int32(searchID),
		Name:     "golf diesel",
		Brand:    lo.ToPtr("Volkswagen"),
		Model:    lo.ToPtr("Golf"),
		IsActive: true,
	})

	golf := helpers.PageListing{ID: "e2e-golf", Title: "Volkswagen Golf 2.0 TDI", Price: 18500, Year: 2019, Mileage: 82000}
	polo := helpers.PageListing{ID: "e2e-polo", Title: "Volkswagen Polo 1.6 TDI", Price: 11900, Year: 2017, Mileage: 120000}
	passat := helpers.PageListing{ID: "e2e-passat", Title: "Volkswagen Passat Variant", Price: 21000, Year: 2020, Mileage: 64000}

	// Mock marketplace server
	marketplace, setPages := helpers.PrepareMarketplaceServer(s.T(),
		helpers.ResultsPage([]helpers.PageListing{golf, polo}, true),
		helpers.ResultsPage([]helpers.PageListing{passat}, false),
	)

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel)

	// Prepare pipeline
	pg := storage.NewPostgres(s.db)
	pageExtractor, err := extractor.NewExtractor(marketplace.URL, &logger)
	s.Require().NoError(err, "should create extractor")

	trk := tracker.NewTracker(
		fetcher.NewFetcher(marketplace.Client(), &logger),
		pageExtractor,
		reconciler.NewReconciler(pg, &logger),
		recorder.NewRecorder(pg),
		query.NewBuilder(marketplace.URL),
		&logger,
		tracker.WithRequestDelay(0),
	)
	sch := scheduler.NewScheduler(pg, trk, &logger, scheduler.WithEnabled(false))
	sch.Start(ctx)
	defer sch.Stop()

	apiSrv := httptest.NewServer(api.NewAPI(pg, sch, &logger).Routes())
	defer apiSrv.Close()

	// Prepare RMQ client and commander
	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	publisher := commander.NewRunCommander(commander.NewRabbitMQSender(rmq, routingKey))

	// Prepare and run handler
	han := handler.NewHandler(rmq, sch, &logger)
	handlerErr := han.Start(ctx, queue)
	s.Require().NoError(handlerErr, "handler shouldn't return any error")

	// Send run command
	if err := publisher.SendRunCommand(ctx, searchID); err != nil {
		s.Require().FailNow("can't publish run command", err)
	}

	// Wait for first run to be finished
	firstRun := helpers.WaitForRunToBeFinished(s.T(), pg, searchID, 0)

	s.Equal(models.RunStatusSuccess, firstRun.Status, "should finish run with success")
	s.Equal(int32(3), firstRun.ListingsFound, "should return correct number of found listings")
	s.Equal(int32(3), firstRun.ListingsNew, "should return correct number of new listings")
	s.Equal(int32(0), firstRun.ListingsUpdated, "should return correct number of updated listings")
	s.Equal(int32(2), firstRun.PagesScraped, "should return correct number of scraped pages")
	s.Equal(int32(2), firstRun.RequestsMade, "should return correct number of requests")
	s.Equal(lo.ToPtr(models.TerminationNoContinuationSignal), firstRun.TerminationReason, "should stop on last page")

	// Second iteration, golf got cheaper and passat is gone
	golf.Price = 17900
	setPages(helpers.ResultsPage([]helpers.PageListing{golf, polo}, false))

	// Trigger run over API
	resp, err := http.Post(fmt.Sprintf("%s/searches/%d/run", apiSrv.URL, searchID), "application/json", nil)
	s.Require().NoError(err, "should trigger run over API")
	s.Require().NoError(resp.Body.Close())
	s.Require().Equal(http.StatusAccepted, resp.StatusCode, "should queue run")

	secondRun := helpers.WaitForRunToBeFinished(s.T(), pg, searchID, firstRun.ID)

	// Cancel context to stop consumer
	cancel()
	<-rmq.Done()
	sch.Stop()

	s.Equal(int32(0), secondRun.ListingsNew, "should return correct number of new listings")
	s.Equal(int32(2), secondRun.ListingsUpdated, "should return correct number of updated listings")
	s.Equal(int32(1), secondRun.PagesScraped, "should return correct number of scraped pages")

	// Check stored listings
	golfListing, err := pg.FindListingByExternalID(context.Background(), golf.ID)
	s.Require().NoError(err, "should find golf listing")
	s.Equal(17900.0, golfListing.Price, "should store new price")
	s.Equal("Volkswagen", golfListing.Brand, "should store brand")
	s.Equal("Golf", golfListing.Model, "should store model")
	s.Equal(lo.ToPtr(82000), golfListing.Mileage, "should store mileage")

	history, err := pg.PriceHistory(context.Background(), golfListing.ID)
	s.Require().NoError(err, "should get price history")
	s.Equal([]float64{18500, 17900}, lo.Map(history, func(e models.PriceHistoryEntry, _ int) float64 {
		return e.Price
	}), "should record price change")

	passatListing, err := pg.FindListingByExternalID(context.Background(), passat.ID)
	s.Require().NoError(err, "should keep listing which disappeared")
	s.True(passatListing.IsAvailable, "should not delist missing listing")

	// Check latest run over API
	latest := getLatestRun(s.T(), apiSrv.URL, searchID)
	s.Equal(float64(secondRun.ID), latest["id"], "should return latest run")
	s.Equal("success", latest["status"], "should return latest run status")

	logs := strings.Split(buf.String(), "\n")
	logs = lo.Filter(logs, func(log string, _ int) bool { return strings.TrimSpace(log) != "" })
	assertLogsContain(s.T(), []string{"run queued", "run started", "run finished", "manual run queued", "run completed"}, logs)
}

// getLatestRun is helper function which gets latest run of search from API.
func getLatestRun(t *testing.T, apiURL string, searchID int) map[string]any {
	t.Helper()

	resp, err := http.Get(fmt.Sprintf("%s/searches/%d/runs/latest", apiURL, searchID))
	require.NoError(t, err, "should get latest run")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "should find latest run")

	var run map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run), "should decode latest run")

	return run
}

// assertLogsContain is helper function which unmarshals json logs and asserts that messages were logged.
func assertLogsContain(t *testing.T, expected []string, actual []string) {
	t.Helper()

	messages := lo.Map(actual, func(line string, _ int) string {
		var log struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(line), &log); err != nil {
			require.FailNow(t, "can't unmarshal json log", err)
		}
		return log.Message
	})

	for _, exp := range expected {
		assert.Containsf(t, messages, exp, "message %q wasn't logged", exp)
	}
}
