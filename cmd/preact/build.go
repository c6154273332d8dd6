package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wen911119/preact/internal/errors"
	"github.com/wen911119/preact/pkg/instrument"
	"github.com/wen911119/preact/pkg/markup"
	"github.com/wen911119/preact/pkg/vdom"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	stdinName = "<stdin>"
)

type buildOptions struct {
	format  string
	output  string
	indent  int
	metrics bool
}

func buildCmd(root *rootOptions) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build a document into a normalized tree",
		Long: `Read a JSON or YAML element document, build it and print the
normalized tree.

The input format is taken from --format, then from the file extension.
Without a file, or with "-", the document is read from stdin as JSON
unless --format says otherwise.

Examples:
  preact build page.json
  preact build page.yaml --output yaml
  cat page.json | preact build --indent 0
  preact build page.json --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				opts.indent = -1
			}
			return runBuild(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format: json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatJSON, "Output format: json or yaml")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "Indent width, 0 for compact JSON (default from config)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print builder metrics to stderr after the document")

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, opts buildOptions, args []string) (err error) {
	cfg, logger, err := root.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	name := stdinName
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
	}
	format, err := inputFormat(opts.format, name)
	if err != nil {
		return err
	}
	output := strings.ToLower(opts.output)
	if output != formatJSON && output != formatYAML {
		return errors.New("E303").WithDetail(fmt.Sprintf("Got %q", opts.output))
	}
	indent := opts.indent
	if indent < 0 {
		indent = cfg.IndentWidth()
	}

	input, err := openInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	defer input.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var hooks vdom.Hooks
	var registry *prometheus.Registry
	if opts.metrics || cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		hooks = append(hooks, instrument.Metrics(
			instrument.WithRegistry(registry),
			instrument.WithNamespace(cfg.Metrics.Namespace),
		))
	}
	if cfg.Tracing.Enabled {
		var span trace.Span
		ctx, span = instrument.StartSpan(ctx, cfg.Tracing.TracerName, "preact.build",
			attribute.String("preact.input", name),
			attribute.String("preact.format", format),
		)
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
		hooks = append(hooks, instrument.Tracing(span))
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = append(hooks, instrument.Logging(logger, slog.LevelDebug))
	}

	dec := markup.NewDecoder(
		markup.WithBuilder(vdom.NewBuilder(vdom.WithHook(hooks), vdom.WithGlobalHook(false))),
		markup.WithSourceName(name),
	)

	start := time.Now()
	var node *vdom.VNode
	if format == formatYAML {
		node, err = dec.DecodeYAML(input)
	} else {
		node, err = dec.DecodeJSON(input)
	}
	if err != nil {
		return err
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "document built",
		slog.String("input", name),
		slog.String("root", node.Name()),
		slog.Duration("duration", time.Since(start)),
	)

	out := cmd.OutOrStdout()
	if output == formatYAML {
		err = markup.EncodeYAML(out, node, indent)
	} else {
		err = markup.Encode(out, node, indent)
	}
	if err != nil {
		return err
	}

	if registry != nil {
		return writeMetrics(cmd.ErrOrStderr(), registry)
	}
	return nil
}

// inputFormat resolves the document format from the flag or file extension.
func inputFormat(flag, name string) (string, error) {
	if flag != "" {
		switch strings.ToLower(flag) {
		case formatJSON:
			return formatJSON, nil
		case formatYAML, "yml":
			return formatYAML, nil
		}
		return "", errors.New("E301").WithDetail(fmt.Sprintf("--format is %q", flag))
	}

	if name == stdinName {
		return formatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return "", errors.New("E301").
		WithDetail(fmt.Sprintf("Cannot tell the format of %s", name)).
		WithSuggestion("Pass --format json or --format yaml")
}

func openInput(stdin io.Reader, name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.New("E300").WithDetail("Cannot open " + name).Wrap(err)
	}
	return f, nil
}

// writeMetrics prints every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.New("E302").Wrap(err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.New("E302").Wrap(err)
		}
	}
	return nil
}
