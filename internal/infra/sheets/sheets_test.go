package sheets

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"quotemaster/go_backend/internal/domain/catalog"
)

const shareURL = "https://docs.google.com/spreadsheets/d/1AbC-x_9/edit#gid=0"

func TestExtractSheetID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{shareURL, "1AbC-x_9", false},
		{"https://docs.google.com/spreadsheets/d/XYZ", "XYZ", false},
		{"https://example.com/sheet?id=1", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ExtractSheetID(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ExtractSheetID(%q) error = %v, want ErrInvalidURL", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ExtractSheetID(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestParseCSV(t *testing.T) {
	input := "\ufeffItem No,Item Description,MRP\nA1,Widget,100\n,,\nB2,\"Bolt, zinc\",2.5,extra\nC3\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if got, _ := rows[0].Lookup("item no"); got != "A1" {
		t.Errorf("first row item no = %q", got)
	}
	if got, _ := rows[2].Lookup("description"); got != "Bolt, zinc" {
		t.Errorf("quoted description = %q", got)
	}
	if _, ok := rows[3].Lookup("mrp"); ok {
		t.Error("short record should have no MRP")
	}

	items := catalog.Normalize(rows)
	if len(items) != 3 || items[0].MRP != 100 {
		t.Fatalf("normalized = %+v", items)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("ParseCSV(empty) error = %v", err)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader("Item No,MRP\n"))
	if err != nil || len(rows) != 0 {
		t.Fatalf("ParseCSV(header only) = %v, %v", rows, err)
	}
}

func xlsxFixture(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	values := [][]any{
		{"SKU", "Name", "Price", "Model"},
		{"P-1", "Pump", 1250.5, "SP"},
		{"P-2", "Valve", "80", ""},
	}
	for i, row := range values {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	rows, err := ParseXLSX(bytes.NewReader(xlsxFixture(t)))
	if err != nil {
		t.Fatalf("ParseXLSX() error = %v", err)
	}
	items := catalog.Normalize(rows)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %+v", items)
	}
	if items[0].ItemNo != "P-1" || items[0].MRP != 1250.5 || items[0].Model != "SP" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1].Model != catalog.DefaultText {
		t.Errorf("second item model = %q", items[1].Model)
	}
}

func TestParseXLSX_Garbage(t *testing.T) {
	if _, err := ParseXLSX(strings.NewReader("not a workbook")); err == nil {
		t.Fatal("expected error")
	}
}

func TestClientFetch(t *testing.T) {
	var gotPath, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormat = r.URL.Query().Get("format")
		w.Write([]byte("Item No,Description,MRP\nA1,Widget,100\n"))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL+"/", "")
	rows, err := c.Fetch(context.Background(), shareURL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotPath != "/spreadsheets/d/1AbC-x_9/export" || gotFormat != "csv" {
		t.Errorf("request = %s format=%s", gotPath, gotFormat)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestClientFetch_XLSX(t *testing.T) {
	body := xlsxFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "xlsx" {
			http.Error(w, "wrong format", http.StatusBadRequest)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()

	rows, err := New(srv.Client(), srv.URL, XLSX).Fetch(context.Background(), shareURL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestClientFetch_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "private document", http.StatusForbidden)
	}))
	defer srv.Close()
	c := New(srv.Client(), srv.URL, CSV)

	t.Run("non-success status", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), shareURL)
		var se *StatusError
		if !errors.As(err, &se) || se.Status != http.StatusForbidden || se.Body != "private document" {
			t.Fatalf("Fetch() error = %v", err)
		}
	})

	t.Run("bad share url", func(t *testing.T) {
		if _, err := c.Fetch(context.Background(), "https://example.com"); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("Fetch() error = %v", err)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		if _, err := New(http.DefaultClient, dead.URL, CSV).Fetch(context.Background(), shareURL); err == nil {
			t.Fatal("expected error")
		}
	})
}
