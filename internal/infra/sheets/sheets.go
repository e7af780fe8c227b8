package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"quotemaster/go_backend/internal/domain/catalog"
)

const DefaultBaseURL = "https://docs.google.com"

type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

var (
	ErrInvalidURL = errors.New("invalid sheet url")
	ErrNoHeader   = errors.New("sheet has no header row")
)

// StatusError is returned when the export endpoint answers with a non-2xx
// status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet export status %d: %s", e.Status, e.Body)
}

var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// ExtractSheetID pulls the document id out of a share link such as
// https://docs.google.com/spreadsheets/d/<id>/edit#gid=0.
func ExtractSheetID(rawURL string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrInvalidURL
	}
	return m[1], nil
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Format  Format
}

func New(httpClient *http.Client, baseURL string, format Format) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if format == "" {
		format = CSV
	}
	return &Client{HTTP: httpClient, BaseURL: strings.TrimRight(baseURL, "/"), Format: format}
}

// ExportURL is the tabular export address for a share link.
func (c *Client) ExportURL(shareURL string) (string, error) {
	id, err := ExtractSheetID(shareURL)
	if err != nil {
		return "", err
	}
	return c.BaseURL + "/spreadsheets/d/" + id + "/export?format=" + string(c.Format), nil
}

// Fetch downloads the first sheet of the document behind shareURL and
// returns its data rows. Any failure yields no rows at all.
func (c *Client) Fetch(ctx context.Context, shareURL string) ([]catalog.Row, error) {
	exportURL, err := c.ExportURL(shareURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	var rows []catalog.Row
	switch c.Format {
	case XLSX:
		rows, err = ParseXLSX(resp.Body)
	default:
		rows, err = ParseCSV(resp.Body)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("sheets: fetched %d rows from %s", len(rows), exportURL)
	return rows, nil
}

// ParseCSV reads a header line followed by data lines. Records may have
// fewer or more fields than the header.
func ParseCSV(r io.Reader) ([]catalog.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return toRows(records)
}

// ParseXLSX reads the first worksheet of a workbook.
func ParseXLSX(r io.Reader) ([]catalog.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return toRows(records)
}

func toRows(records [][]string) ([]catalog.Row, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
	}
	rows := make([]catalog.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, catalog.NewRow(headers, rec))
	}
	return rows, nil
}
