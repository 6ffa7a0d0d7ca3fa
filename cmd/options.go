package cmd

// Options holds the shared command-line options for the gitfolio CLI.
type Options struct {
	Username  string
	Format    string
	Limit     int
	Sort      string
	Featured  bool
	Verbosity int
	NoCache   bool
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Sort: "updated",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithUsername sets the GitHub login to show.
func WithUsername(username string) Option {
	return func(o *Options) {
		o.Username = username
	}
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLimit sets the maximum number of repositories shown.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithSort sets the repository sort order (updated, stars, name).
func WithSort(sort string) Option {
	return func(o *Options) {
		o.Sort = sort
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithNoCache disables the persisted cache fallback.
func WithNoCache(noCache bool) Option {
	return func(o *Options) {
		o.NoCache = noCache
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}
