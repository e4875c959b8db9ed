// Package main provides the entry point for the career_journal CLI.
package main

import (
	"github.com/jonathan/career-journal/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the profile and career entries",
	Long:  "Writes a snapshot of the profile and every career entry to a dated file, to stdout (--stdout), or to the configured S3 bucket (--s3).",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFormat string
	exportDir    string
	exportStdout bool
	exportS3     bool
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json or yaml (default from config)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the export to stdout")
	exportCmd.Flags().BoolVar(&exportS3, "s3", false, "Upload the export to the configured S3 bucket")
	exportCmd.MarkFlagsMutuallyExclusive("stdout", "s3")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	formatName := a.cfg.Export.Format
	if cmd.Flags().Changed("format") {
		formatName = exportFormat
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var sink export.Sink
	switch {
	case exportStdout:
		sink = export.WriterSink{W: cmd.OutOrStdout()}
	case exportS3:
		client, err := export.NewS3Client(cmd.Context(), export.S3Options{
			Region:    a.cfg.Export.S3Region,
			Endpoint:  a.cfg.Export.S3Endpoint,
			AccessKey: a.cfg.Export.S3AccessKey,
			SecretKey: a.cfg.Export.S3SecretKey,
		})
		if err != nil {
			return err
		}
		sink = export.S3Sink{Client: client, Bucket: a.cfg.Export.S3Bucket, Prefix: a.cfg.Export.S3Prefix}
	default:
		dir := a.cfg.Export.Dir
		if cmd.Flags().Changed("out") {
			dir = exportDir
		}
		sink = export.FileSink{Dir: dir}
	}

	exporter := export.NewExporter(sink, a.logger,
		export.WithFormat(format),
		export.WithPrefix(a.cfg.Export.Prefix))

	result, err := exporter.Export(cmd.Context(), a.store)
	if err != nil {
		return err
	}

	if !exportStdout {
		a.printer.PrintExport(result.Name, result.Location, len(result.Document.CareerEntries), result.Size)
	}
	return nil
}
