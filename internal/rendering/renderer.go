package rendering

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-pdf-generator/internal/composing"
)

// DocumentRenderer rasterizes an assembled document into PDF bytes.
// Implementations must treat failure as an ordinary returned error and
// must not retry on their own.
type DocumentRenderer interface {
	RenderPDF(ctx context.Context, doc *composing.Document) ([]byte, error)
}

// Engine identifiers accepted by NewRenderer.
const (
	EngineChromium = "chromium"
	EngineNative   = "native"
)

// Options configures a renderer. Zero values fall back to A4 paper and a
// 60 second timeout.
type Options struct {
	Engine      string        `validate:"omitempty,oneof=chromium native"`
	PaperWidth  float64       `validate:"gte=0"` // inches
	PaperHeight float64       `validate:"gte=0"` // inches
	Timeout     time.Duration `validate:"gte=0"`
	ChromePath  string
	Verbose     bool
}

// A4 dimensions in inches, matching the @page size the stylesheets declare.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

const defaultTimeout = 60 * time.Second

var validate = validator.New()

// withDefaults fills unset option fields.
func (o Options) withDefaults() Options {
	if o.Engine == "" {
		o.Engine = EngineChromium
	}
	if o.PaperWidth == 0 {
		o.PaperWidth = a4WidthInches
	}
	if o.PaperHeight == 0 {
		o.PaperHeight = a4HeightInches
	}
	if o.Timeout == 0 {
		o.Timeout = defaultTimeout
	}
	return o
}

// Validate checks option values against their constraints.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &OptionsError{Message: "constraint violation", Cause: err}
	}
	return nil
}

// NewRenderer constructs the renderer selected by opts.Engine.
func NewRenderer(opts Options) (DocumentRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	switch opts.Engine {
	case EngineNative:
		return &NativeRenderer{opts: opts}, nil
	default:
		return &ChromiumRenderer{opts: opts}, nil
	}
}
