package bench

import (
	"fmt"
	"io"
	stdsort "sort"
	"text/tabwriter"

	"github.com/exascience/sortbench/sort"
)

// Report writes results as an aligned table, grouped by order and size
// and sorted by mean time within each group. The last column relates
// each mean to the mean of the baseline strategy of the same group,
// if it was benchmarked.
func Report(w io.Writer, results []Result) error {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	stdsort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Mean < b.Mean
	})

	type group struct {
		order Order
		size  int
	}
	baselines := make(map[group]Result)
	for _, r := range results {
		if r.Strategy == sort.NameBaseline {
			baselines[group{r.Order, r.Size}] = r
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSIZE\tSTRATEGY\tRUNS\tMEAN\tSTDDEV\tMIN\tMAX\tVS BASELINE")
	for _, r := range sorted {
		ratio := "-"
		if b, ok := baselines[group{r.Order, r.Size}]; ok && b.Mean > 0 {
			ratio = fmt.Sprintf("%.2fx", float64(r.Mean)/float64(b.Mean))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%v\t%v\t%v\t%v\t%s\n",
			r.Order, r.Size, r.Strategy, r.Runs, r.Mean, r.StdDev, r.Min, r.Max, ratio)
	}
	return tw.Flush()
}
