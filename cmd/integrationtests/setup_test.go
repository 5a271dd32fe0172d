package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsi-tue/rri/internal/articlesystem"
	"github.com/fsi-tue/rri/internal/clock"
	"github.com/fsi-tue/rri/internal/ledger"
	"github.com/fsi-tue/rri/internal/mailer"
	"github.com/fsi-tue/rri/internal/server"
)

// memoryFileStore keeps integration tests off the real filesystem
type memoryFileStore struct {
	files map[string]bool
}

func (f *memoryFileStore) Store(r io.Reader, name string) error {
	f.files[name] = true
	return nil
}

func (f *memoryFileStore) Exists(name string) bool { return f.files[name] }

func (f *memoryFileStore) Remove(name string) error {
	delete(f.files, name)
	return nil
}

// SetupTestStack wires the full application against the in-memory ledger and
// a clock frozen at the given instant, and returns both the router and the
// underlying system for direct sweep calls.
func SetupTestStack(now time.Time) (*gin.Engine, *articlesystem.ArticleSystem) {
	gin.SetMode(gin.TestMode)
	memLedger := ledger.NewMemoryLedger()
	system := articlesystem.NewArticleSystem(memLedger, clock.Fixed{Instant: now}, &memoryFileStore{files: map[string]bool{}}, mailer.LogMailer{}, "admin@example.org")
	router := server.SetupRouter(system)
	return router, system
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
