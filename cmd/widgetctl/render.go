package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/card"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/value"
	"rating_widget/internal/infrastructure/rendercache"
	"rating_widget/internal/render"
	"rating_widget/pkg/errcodes"
)

type renderOptions struct {
	file     string
	grade    string
	label    string
	variant  string
	vendor   string
	product  string
	samples  int
	date     string
	format   string
	labelSet string
	strict   bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one rating widget to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "YAML file with the rating record")
	f.StringVar(&opts.grade, "grade", "", "Grade letter A-E")
	f.StringVar(&opts.label, "label", "", "Label override")
	f.StringVar(&opts.variant, "variant", "", "Layout variant: desktop, mobile, compact, embed, mini")
	f.StringVar(&opts.vendor, "vendor", "", "Vendor name")
	f.StringVar(&opts.product, "product", "", "Product name")
	f.IntVar(&opts.samples, "samples", 0, "Number of tested samples")
	f.StringVar(&opts.date, "date", "", "Last test date")
	f.StringVar(&opts.format, "format", render.FormatTerminal.String(), "Output format: html, svg, terminal")
	f.StringVar(&opts.labelSet, "label-set", value.LabelSetClassic.String(), "Default labels: classic or card")
	f.BoolVar(&opts.strict, "strict", false, "Fail on unknown grades instead of falling back")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	record, err := loadRecord(opts.file)
	if err != nil {
		return err
	}

	if err = applyFlags(cmd, opts, &record); err != nil {
		return err
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return fmt.Errorf("render.ParseFormat: %w", err)
	}

	labelSet, err := value.ParseLabelSet(opts.labelSet)
	if err != nil {
		return fmt.Errorf("value.ParseLabelSet: %w", err)
	}

	renderer, err := render.NewRenderer(render.DefaultOptions())
	if err != nil {
		return fmt.Errorf("render.NewRenderer: %w", err)
	}

	svc := card.NewCardService(
		resolver.NewResolver(resolver.WithLabelSet(labelSet)),
		renderer,
		rendercache.Nop{},
		rendercache.Key,
	).WithStrictGrades(opts.strict)

	out, err := svc.Render(cmd.Context(), record, format)
	if err != nil {
		return fmt.Errorf("cardService.Render: %w", err)
	}

	if _, err = cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func loadRecord(path string) (entity.RatingRecord, error) {
	record := entity.RatingRecord{Variant: value.VariantDesktop} //nolint:exhaustruct

	if path == "" {
		return record, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.RatingRecord{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	if err = yaml.Unmarshal(data, &record); err != nil {
		return entity.RatingRecord{}, fmt.Errorf("yaml.Unmarshal(%s): %w", path, err)
	}

	if record.Variant == "" {
		record.Variant = value.VariantDesktop
	}

	if record.Variant, err = value.ParseVariant(record.Variant.String()); err != nil {
		return entity.RatingRecord{}, fmt.Errorf("%s: %w", path, err)
	}

	if err = checkCounts(record); err != nil {
		return entity.RatingRecord{}, fmt.Errorf("%s: %w", path, err)
	}

	return record, nil
}

func checkCounts(record entity.RatingRecord) error {
	if record.SamplesCount < 0 {
		return domain.NewError(errcodes.InvalidRecord, fmt.Sprintf("samplesCount must be non-negative, got %d", record.SamplesCount))
	}

	if record.ReviewCount < 0 {
		return domain.NewError(errcodes.InvalidRecord, fmt.Sprintf("reviewCount must be non-negative, got %d", record.ReviewCount))
	}

	return nil
}

// Флаги, заданные явно, перекрывают значения из файла.
func applyFlags(cmd *cobra.Command, opts *renderOptions, record *entity.RatingRecord) error {
	f := cmd.Flags()

	if f.Changed("grade") {
		record.Grade, _ = value.ParseGrade(opts.grade)
	} else {
		record.Grade, _ = value.ParseGrade(record.Grade.String())
	}

	if f.Changed("label") {
		record.LabelOverride = opts.label
	}

	if f.Changed("variant") {
		variant, err := value.ParseVariant(opts.variant)
		if err != nil {
			return fmt.Errorf("value.ParseVariant: %w", err)
		}

		record.Variant = variant
	}

	if f.Changed("vendor") {
		record.Vendor = opts.vendor
	}

	if f.Changed("product") {
		record.Product = opts.product
	}

	if f.Changed("samples") {
		record.SamplesCount = opts.samples
	}

	if f.Changed("date") {
		record.LastTestDate = opts.date
	}

	return checkCounts(*record)
}
