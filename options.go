package mcbook

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures book generation.
type Option func(*config)

type config struct {
	widths   WidthTable
	tables   FragmentTables
	log      *zap.Logger
	maxPages int
	workers  int
	pageEnd  string
	bookEnd  string
}

func defaultConfig() config {
	return config{
		widths:  DefaultWidthTable(),
		tables:  DefaultFragmentTables(),
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
		pageEnd: PageEnd,
		bookEnd: BookEnd,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWidthTable replaces the character width table.
func WithWidthTable(t WidthTable) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.widths = t
		}
	}
}

// WithFragmentTables replaces the version-keyed command fragments.
func WithFragmentTables(t FragmentTables) Option {
	return func(cfg *config) {
		cfg.tables = t
	}
}

// WithLogger sets the logger used for diagnostics such as unmapped
// characters.
func WithLogger(log *zap.Logger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithMaxPages caps the pages per book; overflowing text continues in a new
// book. Zero disables the cap.
func WithMaxPages(n int) Option {
	return func(cfg *config) {
		cfg.maxPages = max(n, 0)
	}
}

// WithWorkers sets how many documents are paginated concurrently.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithMarkers overrides the sentinel strings that end a page and a book.
func WithMarkers(pageEnd, bookEnd string) Option {
	return func(cfg *config) {
		if pageEnd != "" {
			cfg.pageEnd = pageEnd
		}
		if bookEnd != "" {
			cfg.bookEnd = bookEnd
		}
	}
}
