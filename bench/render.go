package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// scenarioOrder 固定輸出列順序，與量測表無關。
var scenarioOrder = []string{
	ScenGen, ScenIter, ScenIterNoBB,
	ScenRangeGen, ScenRangeGenBB,
	ScenRangeIter, ScenRangeIterBB, ScenRangeIterNB,
}

var encodingOrder = []string{EncAssoc, EncStream, EncTypeparam, EncBaseline}

// Render 把量測結果排成「場景 × 編碼」的主控台表格，
// 儲存格為 "ns ± std"；缺的組合（baseline 沒有 range 場景）留白。
func Render(results []Result) string {
	p := message.NewPrinter(lang)

	cell := make(map[string]string, len(results))
	for _, r := range results {
		cell[r.Encoding+"/"+r.Scenario] = p.Sprintf("%.0f ± %.0f", r.NsPerIter, r.Std)
	}

	encs := make([]string, 0, len(encodingOrder))
	for _, e := range encodingOrder {
		for _, r := range results {
			if r.Encoding == e {
				encs = append(encs, e)
				break
			}
		}
	}
	scens := make([]string, 0, len(scenarioOrder))
	for _, s := range scenarioOrder {
		for _, r := range results {
			if r.Scenario == s {
				scens = append(scens, s)
				break
			}
		}
	}

	// 各欄寬度
	col0 := runewidth.StringWidth("scenario")
	for _, s := range scens {
		if w := runewidth.StringWidth(s); w > col0 {
			col0 = w
		}
	}
	widths := make([]int, len(encs))
	for i, e := range encs {
		widths[i] = runewidth.StringWidth(e)
		for _, s := range scens {
			if w := runewidth.StringWidth(cell[e+"/"+s]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	divider := func() {
		b.WriteString("+" + strings.Repeat("-", col0+2))
		for _, w := range widths {
			b.WriteString("+" + strings.Repeat("-", w+2))
		}
		b.WriteString("+\n")
	}
	row := func(first string, cells []string) {
		b.WriteString(fmt.Sprintf("| %s%s ", first, blank(col0-runewidth.StringWidth(first))))
		for i, c := range cells {
			b.WriteString(fmt.Sprintf("| %s%s ", blank(widths[i]-runewidth.StringWidth(c)), c))
		}
		b.WriteString("|\n")
	}

	divider()
	row("scenario", encs)
	divider()
	for _, s := range scens {
		cells := make([]string, len(encs))
		for i, e := range encs {
			cells[i] = cell[e+"/"+s]
		}
		row(s, cells)
	}
	divider()

	return b.String()
}

// StdOut 輸出結果表與總用時。
func StdOut(results []Result, used time.Duration) {
	p := message.NewPrinter(lang)
	fmt.Print(Render(results))
	p.Printf("used: %.2f seconds (ns/iter, mean ± std over rounds)\n", used.Seconds())
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
