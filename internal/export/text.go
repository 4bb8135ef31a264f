package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints tables as aligned columns, each preceded by its name
func WriteText(w io.Writer, tables ...Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "== %s (%d rows)\n", t.Name, len(t.Rows))
		fmt.Fprintln(tw, strings.Join(t.Header, "\t")+"\t")
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(formatRow(row), "\t")+"\t")
		}
	}
	return tw.Flush()
}
