package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultTimeout = 8 * time.Second

// ErrMalformedDeck is returned when the payload is not a card array.
var ErrMalformedDeck = errors.New("catalog: deck payload is not a card array")

// State tracks the data-source lifecycle. The renderer consumes all three
// states uniformly.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateFailed
)

// Result is the three-state outcome of the one-shot catalog fetch.
type Result struct {
	State   State
	Catalog *Catalog
	Err     error
}

// Loading returns the initial, unresolved result.
func Loading() Result { return Result{State: StateLoading} }

// Loaded wraps a resolved catalog.
func Loaded(c *Catalog) Result { return Result{State: StateLoaded, Catalog: c} }

// Failed wraps a load error.
func Failed(err error) Result { return Result{State: StateFailed, Err: err} }

// Loader fetches the card deck from the configured source. The source may be
// an HTTP(S) URL or a local file path. When the source is empty, the loader
// serves the built-in sample deck so the binary runs standalone.
type Loader struct {
	source string
	http   *http.Client
}

// NewLoader constructs a loader for the given source.
func NewLoader(source string) *Loader {
	return &Loader{
		source: strings.TrimSpace(source),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Load fetches and validates the deck. It is called once per session; there
// is no automatic retry on failure.
func (l *Loader) Load(ctx context.Context) Result {
	raw, err := l.fetch(ctx)
	if err != nil {
		return Failed(err)
	}
	cat, err := Decode(raw)
	if err != nil {
		return Failed(err)
	}
	return Loaded(cat)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if l.source == "" {
		return sampleDeckJSON, nil
	}
	if !strings.HasPrefix(l.source, "http://") && !strings.HasPrefix(l.source, "https://") {
		raw, err := os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("read deck file: %w", err)
		}
		return raw, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build deck request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	res, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch deck: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch deck: unexpected status %d", res.StatusCode)
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read deck response: %w", err)
	}
	return raw, nil
}

// Decode parses a JSON card array and builds the validated catalog.
func Decode(raw []byte) (*Catalog, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrMalformedDeck
	}
	var cards []Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return New(cards)
}
