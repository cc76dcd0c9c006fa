package gateway_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reconviewer/internal/domain"
	"reconviewer/internal/gateway"
)

func TestClassifierClient_Classify(t *testing.T) {
	bankDoc := domain.Document{Name: "statement.csv", MediaType: "text/csv", Content: []byte("bank-bytes")}
	ledgerDoc := domain.Document{Name: "ledger.pdf", MediaType: "application/pdf", Content: []byte("ledger-bytes")}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		bank := req["bankStatement"].(map[string]any)
		assert.Equal(t, base64.StdEncoding.EncodeToString(bankDoc.Content), bank["content"])
		assert.Equal(t, "text/csv", bank["mediaType"])
		assert.Equal(t, "2024-03-31", req["asAtDate"])
		assert.Equal(t, "precise", req["mode"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":{"bankBalance":7079.5,"asAtDate":"2024-03-31"},"unmatchedBankTransactions":[{"amount":"25.00"}]}`))
	}))
	defer server.Close()

	client := gateway.NewClassifierClient(server.URL, zap.NewNop())
	raw, err := client.Classify(context.Background(), bankDoc, ledgerDoc, "2024-03-31", domain.ModePrecise)

	require.NoError(t, err)
	summary := raw["summary"].(map[string]any)
	// Numbers come back as json.Number, not float64.
	assert.Equal(t, json.Number("7079.5"), summary["bankBalance"])
	assert.Equal(t, "2024-03-31", summary["asAtDate"])
}

func TestClassifierClient_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := gateway.NewClassifierClient(server.URL, zap.NewNop())
	raw, err := client.Classify(context.Background(), domain.Document{}, domain.Document{}, "2024-03-31", domain.ModeFast)

	require.Error(t, err)
	assert.Nil(t, raw)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestClassifierClient_NonParseableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client := gateway.NewClassifierClient(server.URL, zap.NewNop())
	raw, err := client.Classify(context.Background(), domain.Document{}, domain.Document{}, "2024-03-31", domain.ModeFast)

	require.Error(t, err)
	assert.Nil(t, raw)
	assert.Contains(t, err.Error(), "could not parse classification response")
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount\n"), 0o644))

	doc, err := gateway.ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "statement.csv", doc.Name)
	assert.Contains(t, doc.MediaType, "text/csv")
	assert.Equal(t, []byte("date,amount\n"), doc.Content)
}

func TestReadDocument_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.qfx2")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o644))

	doc, err := gateway.ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", doc.MediaType)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := gateway.ReadDocument("/does/not/exist.csv")
	assert.Error(t, err)
}
