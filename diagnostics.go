package mcbook

import (
	"fmt"
	"sync"

	"github.com/muesli/reflow/truncate"
	"github.com/npillmayer/uax/uax11"
	"go.uber.org/zap"
)

const maxTokenContext = 24

// diagnostics reports each unmapped character once per run. It is shared by
// all documents of a run and safe for concurrent use.
type diagnostics struct {
	log  *zap.Logger
	seen sync.Map
}

func newDiagnostics(log *zap.Logger) *diagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return &diagnostics{log: log}
}

func (d *diagnostics) unmapped(r rune, token string) {
	if _, dup := d.seen.LoadOrStore(r, struct{}{}); dup {
		return
	}
	d.log.Warn("unmapped character, assuming default width",
		zap.String("char", string(r)),
		zap.String("codepoint", fmt.Sprintf("%U", r)),
		zap.String("eastAsianWidth", eastAsianWidth(r)),
		zap.Int("width", DefaultCharWidth),
		zap.String("token", truncate.StringWithTail(token, maxTokenContext, "…")),
	)
}

// eastAsianWidth names the UAX#11 category of r. Wide and fullwidth
// characters are the ones most likely to be underestimated by the default.
func eastAsianWidth(r rune) string {
	switch uax11.WidthCategory(r) {
	case uax11.A:
		return "ambiguous"
	case uax11.W:
		return "wide"
	case uax11.Na:
		return "narrow"
	case uax11.H:
		return "halfwidth"
	case uax11.F:
		return "fullwidth"
	default:
		return "neutral"
	}
}
