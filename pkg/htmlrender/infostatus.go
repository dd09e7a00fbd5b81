package htmlrender

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/folio/pkg/markup"
)

// writeInfoStatus renders the callout box. The message keeps its line
// breaks and only bold is formatted inside it.
func writeInfoStatus(w io.Writer, component markup.Component) error {
	status, ok := component.(markup.InfoStatus)
	if !ok {
		return fmt.Errorf("unexpected component %T", component)
	}

	hw := &htmlWriter{w: w}
	hw.raw(`<div`)
	hw.attr("class", "info-status info-status-"+status.Type)
	hw.raw(`><div class="info-status-icon"></div><div class="info-status-content"><div class="info-status-title">`)
	hw.text(status.Title)
	hw.raw(`</div><div class="info-status-message">`)
	for idx, line := range strings.Split(status.Message, "\n") {
		if idx > 0 {
			hw.raw("<br>")
		}
		writeSpans(hw, markup.FormatBold(line))
	}
	hw.raw("</div></div></div>\n")

	return hw.err
}
