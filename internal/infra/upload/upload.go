package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
)

// Dispatch is all the caller learns about an upload: the endpoint does not
// return anything readable, so success means "the request went out".
type Dispatch string

const (
	Skipped        Dispatch = "skipped"
	Dispatched     Dispatch = "dispatched"
	DispatchFailed Dispatch = "failed"
)

type User struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type Payload struct {
	Type      string  `json:"type"`
	PDF       string  `json:"pdf"`
	User      User    `json:"user"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
	FileName  string  `json:"fileName"`
}

// NewQuotationPayload wraps a rendered document for the upload script.
func NewQuotationPayload(doc []byte, user User, itemCount int, total float64, fileName string) Payload {
	return Payload{
		Type:      "quotation",
		PDF:       DataURI(doc, fileName),
		User:      user,
		ItemCount: itemCount,
		Total:     total,
		FileName:  fileName,
	}
}

// DataURI encodes doc as a base64 data URI, the form the upload script
// decodes.
func DataURI(doc []byte, fileName string) string {
	return "data:application/pdf;filename=" + fileName + ";base64," + base64.StdEncoding.EncodeToString(doc)
}

type Client struct {
	HTTP *http.Client
}

func New(httpClient *http.Client) *Client { return &Client{HTTP: httpClient} }

// Send posts the payload once. The response is drained and ignored; only
// transport-level failures are reported.
func (c *Client) Send(ctx context.Context, endpoint string, p Payload) (Dispatch, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return Skipped, nil
	}

	body, err := json.Marshal(p)
	if err != nil {
		return DispatchFailed, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return DispatchFailed, err
	}
	// text/plain keeps the request "simple" for script hosts without CORS.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("upload: send %s failed: %v", p.FileName, err)
		return DispatchFailed, err
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()

	log.Printf("upload: dispatched %s (%d items)", p.FileName, p.ItemCount)
	return Dispatched, nil
}
