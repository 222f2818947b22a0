package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"syngen/internal/model"
	"syngen/internal/pipeline"
	"syngen/internal/schema"
	"syngen/pkg/utils"
)

type GenerateCmd struct {
	Topic      string   `help:"Dataset topic (Healthcare, Finance, Education)" required:"" short:"t"`
	Count      int      `help:"Number of records to generate" default:"100" short:"n"`
	Seed       uint64   `help:"Seed for a reproducible dataset; 0 picks one" default:"0"`
	AsOf       string   `help:"Reference date (YYYY-MM-DD) for date fields; empty means today" default:""`
	Out        string   `help:"Directory that receives one sub-directory per run" default:"output" type:"path" env:"SYNGEN_OUTPUT_DIR"`
	Format     []string `help:"Export formats to write" default:"csv,xlsx,json" enum:"csv,xlsx,json,sqlite"`
	Histograms bool     `help:"Print histogram bins below the summary table"`
}

func (c *GenerateCmd) Run() error {
	topic, err := schema.ParseTopic(c.Topic)
	if err != nil {
		return err
	}

	now := time.Now
	if c.AsOf != "" {
		asOf, err := time.Parse(model.DateLayout, c.AsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of %q: %w", c.AsOf, err)
		}
		now = func() time.Time { return asOf }
	}

	formats := make([]model.Format, 0, len(c.Format))
	for _, name := range c.Format {
		f, err := pipeline.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	res, err := pipeline.Run(context.Background(), pipeline.Request{
		Topic:   topic,
		Count:   c.Count,
		Seed:    c.Seed,
		Formats: formats,
		Now:     now,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n✅ Generated %d records for %s dataset (seed %d).\n\n", res.Dataset.Len(), topic, res.Seed)
	if err := writeReport(os.Stdout, res.Report); err != nil {
		return err
	}
	if c.Histograms {
		if err := writeHistograms(os.Stdout, res.Report.Histograms); err != nil {
			return err
		}
	}

	om := utils.NewOutputManager(c.Out)
	fmt.Println()
	for _, a := range res.Artifacts {
		path, err := om.WriteArtifact(res.RunID, a)
		if err != nil {
			return err
		}
		fmt.Printf("💾 %s (%d bytes)\n", path, len(a.Data))
	}
	return nil
}

type TopicsCmd struct{}

func (c *TopicsCmd) Run() error {
	for _, t := range schema.Topics() {
		s, _ := schema.Lookup(t)
		cols := make([]string, 0, len(s.Specs))
		for _, f := range s.Fields() {
			cols = append(cols, fmt.Sprintf("%s (%s)", f.Name, f.Kind))
		}
		fmt.Printf("%s: %s\n", t, strings.Join(cols, ", "))
	}
	return nil
}

var cli struct {
	Generate GenerateCmd `cmd:"" help:"Generate a dataset, print its summary and write the exports."`
	Topics   TopicsCmd   `cmd:"" help:"List topics and their fields."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("syngen"),
		kong.Description("Generate synthetic tabular datasets with summary statistics."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
