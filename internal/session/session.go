package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quotemaster/go_backend/internal/domain/cart"
	"quotemaster/go_backend/internal/domain/catalog"
	"quotemaster/go_backend/internal/domain/pricing"
	"quotemaster/go_backend/internal/domain/quote"
	"quotemaster/go_backend/internal/domain/quote/pdf"
	"quotemaster/go_backend/internal/infra/store"
	"quotemaster/go_backend/internal/infra/upload"
)

var (
	ErrNotConfigured = errors.New("catalog url is not configured")
	ErrUnknownItem   = errors.New("unknown catalog item")
	ErrEmptyCart     = errors.New("cart is empty")
)

// IngestError reports a failed catalog refresh. The previous catalog stays
// in place.
type IngestError struct {
	Err error
}

func (e *IngestError) Error() string { return "catalog ingestion failed: " + e.Err.Error() }
func (e *IngestError) Unwrap() error { return e.Err }

// Source fetches raw catalog rows for a share link.
type Source interface {
	Fetch(ctx context.Context, url string) ([]catalog.Row, error)
}

// Uploader pushes a rendered quotation somewhere. Only dispatch is
// observable.
type Uploader interface {
	Send(ctx context.Context, endpoint string, p upload.Payload) (upload.Dispatch, error)
}

type UploadStatus string

const (
	UploadIdle    UploadStatus = "idle"
	UploadSuccess UploadStatus = "success"
	UploadFailed  UploadStatus = "fail"
)

// Result is a generated quotation. Document is always set; Upload only
// tells whether the copy was sent.
type Result struct {
	Quotation quote.Quotation
	Document  []byte
	Upload    UploadStatus
}

// Snapshot is a consistent view of the cart and its totals.
type Snapshot struct {
	Lines    []cart.Line      `json:"lines"`
	Discount pricing.Discount `json:"discount"`
	Totals   pricing.Totals   `json:"totals"`
}

// Session owns one user's catalog, cart and discount. Every method is a
// short critical section; network calls run outside the lock.
type Session struct {
	store    store.Store
	source   Source
	render   pdf.Generator
	uploader Uploader
	now      func() time.Time

	mu       sync.Mutex
	items    []catalog.Item
	loadedAt time.Time
	cart     *cart.Cart
	discount pricing.Discount
}

func New(s store.Store, src Source, render pdf.Generator, up Uploader) *Session {
	return &Session{
		store:    s,
		source:   src,
		render:   render,
		uploader: up,
		now:      time.Now,
		cart:     cart.New(),
	}
}

// RefreshCatalog replaces the catalog with a fresh copy of the configured
// sheet and returns the number of items. Without a catalog url it returns
// ErrNotConfigured and does nothing.
func (s *Session) RefreshCatalog(ctx context.Context) (int, error) {
	cfg := store.LoadConfig(ctx, s.store)
	if cfg.CatalogURL == "" {
		return 0, ErrNotConfigured
	}

	rows, err := s.source.Fetch(ctx, cfg.CatalogURL)
	if err != nil {
		log.Printf("session: catalog refresh failed: %v", err)
		return 0, &IngestError{Err: err}
	}
	items := catalog.Normalize(rows)

	s.mu.Lock()
	s.items = items
	s.loadedAt = s.now()
	s.mu.Unlock()

	log.Printf("session: catalog loaded %d items from %d rows", len(items), len(rows))
	return len(items), nil
}

// Catalog returns the current snapshot and when it was loaded.
func (s *Session) Catalog() ([]catalog.Item, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, s.loadedAt
}

func (s *Session) Search(query string, offset, limit int) catalog.Page {
	items, _ := s.Catalog()
	return catalog.Search(items, query, offset, limit)
}

func (s *Session) AddToCart(id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := catalog.Find(s.items, id)
	if !ok {
		return ErrUnknownItem
	}
	return s.cart.Add(item, qty)
}

func (s *Session) SetQuantity(id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(id, qty)
}

func (s *Session) RemoveFromCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(id)
}

// ClearCart empties the cart and drops the discount.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.discount = pricing.Discount{}
}

func (s *Session) SetDiscount(d pricing.Discount) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = d
	return s.snapshot()
}

func (s *Session) Cart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	lines := s.cart.Lines()
	return Snapshot{
		Lines:    lines,
		Discount: s.discount,
		Totals:   pricing.Compute(lines, s.discount),
	}
}

// GenerateQuotation renders the current cart for who. If an upload endpoint
// is configured and the requester is named, a copy is sent afterwards; an
// upload failure is reported in Result.Upload and never fails the call.
func (s *Session) GenerateQuotation(ctx context.Context, who quote.Requester) (Result, error) {
	snap := s.Cart()
	if len(snap.Lines) == 0 {
		return Result{}, ErrEmptyCart
	}

	q := quote.Assemble(snap.Lines, snap.Totals, who, s.now())
	doc, err := s.render.Generate(q)
	if err != nil {
		return Result{}, fmt.Errorf("render quotation: %w", err)
	}
	res := Result{Quotation: q, Document: doc, Upload: UploadIdle}

	cfg := store.LoadConfig(ctx, s.store)
	if cfg.UploadEndpointURL == "" || who.Anonymous() {
		return res, nil
	}

	payload := upload.NewQuotationPayload(doc,
		upload.User{Name: who.DisplayName(), Mobile: who.Mobile},
		len(q.Items), q.FinalTotal, q.FileName())
	d, err := s.uploader.Send(ctx, cfg.UploadEndpointURL, payload)
	switch {
	case err != nil || d == upload.DispatchFailed:
		log.Printf("session: upload of %s failed: %v", q.Number, err)
		res.Upload = UploadFailed
	case d == upload.Dispatched:
		res.Upload = UploadSuccess
	}
	return res, nil
}
