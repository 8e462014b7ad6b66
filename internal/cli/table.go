package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"

	"github.com/matzehuels/ledwire/pkg/plan"
)

// writeMatrix prints the chain order as the diagrams draw it: the first row
// of the chain is printed first, at the top.
func writeMatrix(w io.Writer, p *plan.Plan) {
	m := p.Matrix()
	width := len(strconv.Itoa(p.Cols * p.Rows))
	for r := range m {
		cells := make([]string, len(m[r]))
		for c, order := range m[r] {
			cells[c] = fmt.Sprintf("%*d", width, order)
		}
		fmt.Fprintln(w, "  "+strings.Join(cells, " "))
	}
}

// writeTierTable prints one row of cable counts per harness.
func writeTierTable(w io.Writer, p *plan.Plan) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Harness").SetAlign(tabulate.ML)
	tab.Header("Policy").SetAlign(tabulate.ML)
	tab.Header("Small").SetAlign(tabulate.MR)
	tab.Header("Medium").SetAlign(tabulate.MR)
	tab.Header("Large").SetAlign(tabulate.MR)
	tab.Header("Total").SetAlign(tabulate.MR)

	for _, h := range p.Harnesses {
		row := tab.Row()
		row.Column(h.Name.Title())
		row.Column(h.Policy.String())
		row.Column(strconv.Itoa(h.Counts.Small))
		row.Column(strconv.Itoa(h.Counts.Medium))
		row.Column(strconv.Itoa(h.Counts.Large))
		row.Column(strconv.Itoa(h.Counts.Total())).SetFormat(tabulate.FmtBold)
	}

	tab.Print(w)
}
