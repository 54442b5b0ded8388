package quillmark

// Default resource limits. They protect a multi-tenant host from adversarial
// or pathological input and are enforced at the boundary, before the
// expensive work begins.
const (
	DefaultMaxBytes       = 10 << 20 // whole document
	DefaultMaxHeaderBytes = 1 << 20  // a single metadata block
	DefaultMaxDepth       = 32       // nesting of any parsed value
	DefaultMaxCards       = 4096     // card entries per document
	DefaultMaxFields      = 1024     // distinct keys per object
)

// Limits bundles the boundary resource limits. The zero value of any field
// selects its default; there is no way to disable a limit.
type Limits struct {
	MaxBytes       int64
	MaxHeaderBytes int64
	MaxDepth       int
	MaxCards       int
	MaxFields      int
}

// DefaultLimits returns the default limit set.
func DefaultLimits() Limits {
	return Limits{
		MaxBytes:       DefaultMaxBytes,
		MaxHeaderBytes: DefaultMaxHeaderBytes,
		MaxDepth:       DefaultMaxDepth,
		MaxCards:       DefaultMaxCards,
		MaxFields:      DefaultMaxFields,
	}
}

func normalizeLimits(opts []Limits) Limits {
	lim := Limits{}
	if len(opts) > 0 {
		lim = opts[len(opts)-1]
	}
	def := DefaultLimits()
	if lim.MaxBytes <= 0 {
		lim.MaxBytes = def.MaxBytes
	}
	if lim.MaxHeaderBytes <= 0 {
		lim.MaxHeaderBytes = def.MaxHeaderBytes
	}
	if lim.MaxDepth <= 0 {
		lim.MaxDepth = def.MaxDepth
	}
	if lim.MaxCards <= 0 {
		lim.MaxCards = def.MaxCards
	}
	if lim.MaxFields <= 0 {
		lim.MaxFields = def.MaxFields
	}
	return lim
}
