package helpers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	waitTimeout = 30 * time.Second
)

// PageListing is listing rendered on mocked search results page.
type PageListing struct {
	ID      string
	Title   string
	Price   int
	Year    int
	Mileage int
}

// RunReader reads latest run of search.
type RunReader interface {
	LatestRun(ctx context.Context, searchID int) (*models.RunRecord, error)
}

// WaitForRunToBeFinished is blocking helper function, returns latest run of search after it is finished.
// Runs with ID lower or equal to afterRunID are ignored.
func WaitForRunToBeFinished(t *testing.T, runs RunReader, searchID, afterRunID int) *models.RunRecord {
	t.Helper()

	deadline := time.After(waitTimeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "run wasn't finished in time", "search %d", searchID)
		case <-time.After(250 * time.Millisecond):
		}

		run, err := runs.LatestRun(context.Background(), searchID)
		if err == nil && run.ID > afterRunID && run.CompletedAt != nil {
			return run
		}
	}
}

// PrepareMarketplaceServer is helper function for mocking marketplace search results pages.
// Page number is read from page query parameter, pages out of range are empty.
// Returns function for replacing served pages.
func PrepareMarketplaceServer(t *testing.T, pages ...[]byte) (*httptest.Server, func(pages ...[]byte)) {
	t.Helper()

	var mu sync.Mutex
	served := pages

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		page, err := strconv.Atoi(req.URL.Query().Get("page"))
		if err != nil {
			page = 1
		}

		mu.Lock()
		body := ResultsPage(nil, false)
		if page >= 1 && page <= len(served) {
			body = served[page-1]
		}
		mu.Unlock()

		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write(body)
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(pages ...[]byte) {
		mu.Lock()
		defer mu.Unlock()
		served = pages
	}
}

// ResultsPage renders search results page with provided listings.
func ResultsPage(listings []PageListing, hasNext bool) []byte {
	var b strings.Builder
	b.WriteString("<html><body><main>")
	for _, l := range listings {
		fmt.Fprintf(&b,
			`<div data-item-name="result-item" data-id="%s">`+
				`<a href="/auto/%s/%s"><h2>%s</h2></a>`+
				`<span class="price">€ %s</span>`+
				`<span>%d %s km Diesel Manuale</span>`+
				`</div>`,
			l.ID, strings.ToLower(strings.ReplaceAll(l.Title, " ", "-")), l.ID, l.Title,
			groupThousands(l.Price), l.Year, groupThousands(l.Mileage),
		)
	}
	if hasNext {
		b.WriteString(`<nav><a aria-label="Next page" href="?page=next">&gt;</a></nav>`)
	}
	b.WriteString("</main></body></html>")

	return []byte(b.String())
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// groupThousands formats n with dot as thousands separator.
func groupThousands(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}
