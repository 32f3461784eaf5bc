package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"newsdesk/internal/display"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/utils/text"
)

const (
	dividerWidth     = 70
	entityColWidth   = 30
	labelColWidth    = 12
	maxEntityRows    = 20
	entryTitleWidth  = 66
	entrySourceWidth = 40
)

func (r *REPL) divider() {
	fmt.Fprintln(r.out, dimStyle.Render(strings.Repeat("─", dividerWidth)))
}

func (r *REPL) banner(label string) {
	r.divider()
	fmt.Fprintln(r.out, headerStyle.Render(label))
	r.divider()
}

// renderEntries prints the ranked article list. The iterator is consumed
// here; it cannot be replayed.
func (r *REPL) renderEntries(it *display.Iterator) {
	for {
		e, ok := it.Next()
		if !ok {
			return
		}
		title := e.Title
		if title == "" {
			title = r.t("display.no_title", nil)
		}
		title = text.TruncateDisplay(title, entryTitleWidth)
		fmt.Fprintf(r.out, "%2d. %s\n", e.Rank, titleStyle.Render(title))
		fmt.Fprintf(r.out, "    %s | %s\n",
			sourceStyle.Render(text.TruncateDisplay(e.Source, entrySourceWidth)),
			dateStyle.Render(e.Published))
		fmt.Fprintf(r.out, "    %s\n", linkStyle.Render(e.URL))
	}
}

// renderEntityTable prints the aggregated entity frequencies as a fixed
// three-column table. Column widths are terminal cells, not runes, so
// double-width characters stay aligned.
func (r *REPL) renderEntityTable(counts []entity.Count) {
	header := fmt.Sprintf("%s %s %s",
		pad(r.t("entities.entity", nil), entityColWidth),
		pad(r.t("entities.type", nil), labelColWidth),
		r.t("entities.frequency", nil))
	fmt.Fprintln(r.out, headerStyle.Render(header))

	rows := counts
	if len(rows) > maxEntityRows {
		rows = rows[:maxEntityRows]
	}
	for _, c := range rows {
		fmt.Fprintf(r.out, "%s %s %d\n",
			pad(text.TruncateDisplay(c.Text, entityColWidth), entityColWidth),
			pad(c.Label, labelColWidth),
			c.Count)
	}
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func (r *REPL) printError(msg string) {
	fmt.Fprintln(r.out, errorStyle.Render(msg))
}

func (r *REPL) printSuccess(msg string) {
	fmt.Fprintln(r.out, successStyle.Render(msg))
}
