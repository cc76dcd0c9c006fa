// Package gateway holds the outermost layer: the HTTP client for the
// external classification service and the document ingestion helper.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"reconviewer/internal/domain"
)

const defaultTimeout = 120 * time.Second

// classifyRequest is the wire shape sent to the classification service.
type classifyRequest struct {
	BankStatement  encodedDocument `json:"bankStatement"`
	LedgerDocument encodedDocument `json:"ledgerDocument"`
	AsAtDate       string          `json:"asAtDate"`
	Mode           string          `json:"mode"`
}

type encodedDocument struct {
	Content   string `json:"content"` // base64
	MediaType string `json:"mediaType"`
}

// ClassifierClient implements the usecase.Classifier interface against an
// HTTP endpoint. Each Classify call is a single attempt: the reconciliation
// contract has no retries, so transient transport failures surface to the
// caller as attempt failures.
type ClassifierClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClassifierClient creates a client for the given service endpoint.
func NewClassifierClient(endpoint string, logger *zap.Logger) *ClassifierClient {
	return &ClassifierClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// Classify submits both documents and the session parameters, returning the
// service's decoded response as an untyped map. Numbers are decoded as
// json.Number so the sanitizer can coerce them without float round-trips.
func (c *ClassifierClient) Classify(ctx context.Context, bankDoc, ledgerDoc domain.Document, asAtDate string, mode domain.Mode) (map[string]any, error) {
	payload := classifyRequest{
		BankStatement:  encodeDocument(bankDoc),
		LedgerDocument: encodeDocument(ledgerDoc),
		AsAtDate:       asAtDate,
		Mode:           string(mode),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not encode classification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not build classification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("calling classification service",
		zap.String("endpoint", c.endpoint),
		zap.String("mode", string(mode)),
		zap.String("asAtDate", asAtDate),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classification service call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the cause string; the full body is
		// untrusted and may be large.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("classification service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not parse classification response: %w", err)
	}
	return raw, nil
}

func encodeDocument(doc domain.Document) encodedDocument {
	return encodedDocument{
		Content:   base64.StdEncoding.EncodeToString(doc.Content),
		MediaType: doc.MediaType,
	}
}

// ReadDocument reads a source document from disk, deriving its media type
// from the file extension.
func ReadDocument(path string) (domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return domain.Document{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Content:   content,
	}, nil
}
