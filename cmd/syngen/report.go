package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"syngen/internal/model"
)

const barWidth = 40

// writeReport prints the describe()-style table, one row per field
func writeReport(w io.Writer, report model.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "field\tcount\tunique\ttop\tfreq\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, c := range report.Columns {
		cells := []string{
			c.Field,
			strconv.Itoa(c.Count),
			intCell(c.Unique),
			stringCell(c.Top),
			intCell(c.Freq),
			floatCell(c.Mean),
			floatCell(c.Std),
			floatCell(c.Min),
			floatCell(c.P25),
			floatCell(c.P50),
			floatCell(c.P75),
			floatCell(c.Max),
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// writeHistograms prints each histogram as a bar per bin
func writeHistograms(w io.Writer, hists []model.Histogram) error {
	for _, h := range hists {
		fmt.Fprintf(w, "\n%s\n", h.Title)
		peak := 0
		for _, n := range h.Counts {
			peak = max(peak, n)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
		for i, n := range h.Counts {
			bar := 0
			if peak > 0 {
				bar = n * barWidth / peak
			}
			fmt.Fprintf(tw, "%.2f\t- %.2f\t%d\t %s\n", h.Edges[i], h.Edges[i+1], n, strings.Repeat("#", bar))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func intCell(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func stringCell(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func floatCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
