package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/dcatqa/config"
	"github.com/c360studio/dcatqa/profile"
	"github.com/c360studio/dcatqa/quality"
	"github.com/c360studio/dcatqa/rdf"
	"github.com/c360studio/dcatqa/shacl"
)

// setupFunc builds the shared config and logger once per invocation, after
// flag parsing.
type setupFunc func() (*config.Config, *slog.Logger, error)

// profileFlags are the selection flags shared by the validation and quality
// commands.
type profileFlags struct {
	profile string
	level   int
	hvd     bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "dcat_ap_es", "Application profile (dcat_ap, dcat_ap_es, nti_risp)")
	cmd.Flags().IntVar(&f.level, "level", 0, "DCAT-AP strictness level (1-3, 0 = default)")
	cmd.Flags().BoolVar(&f.hvd, "hvd", false, "Include High Value Dataset shapes (dcat_ap_es)")
}

func (f *profileFlags) selection() (profile.Selection, error) {
	p, err := profile.Parse(f.profile)
	if err != nil {
		return profile.Selection{}, err
	}
	return profile.Selection{Profile: p, Level: profile.Level(f.level), HVD: f.hvd}, nil
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func newValidateCmd(setup setupFunc) *cobra.Command {
	var flags profileFlags
	var format string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an RDF document against a profile's SHACL shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			sel, err := flags.selection()
			if err != nil {
				return err
			}
			content, err := readInput(args[0])
			if err != nil {
				return err
			}

			svc := shacl.NewService(cfg, logger)
			defer svc.Close()
			report, err := svc.ValidateRDF(cmd.Context(), content, sel, parseFormat(format, content))
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "Input format (turtle, ntriples, rdfxml); detected when empty")
	return cmd
}

func newQualityCmd(setup setupFunc) *cobra.Command {
	var flags profileFlags
	var withSHACL bool
	var dqvLang string

	cmd := &cobra.Command{
		Use:   "quality <file>",
		Short: "Score an RDF document on the FAIR+C quality dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			sel, err := flags.selection()
			if err != nil {
				return err
			}
			content, err := readInput(args[0])
			if err != nil {
				return err
			}

			calc := quality.NewCalculator(cfg, logger)
			defer calc.Close()
			if withSHACL {
				rr, err := calc.CalculateWithSHACL(cmd.Context(), content, sel)
				if err != nil {
					return err
				}
				if dqvLang != "" {
					doc, err := quality.ExportDQV(rr.Result, dqvLang)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), doc)
					return nil
				}
				return printJSON(cmd, rr)
			}

			result, err := calc.Calculate(content, sel.Profile)
			if err != nil {
				return err
			}
			if dqvLang != "" {
				doc, err := quality.ExportDQV(result, dqvLang)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			}
			return printJSON(cmd, result)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&withSHACL, "shacl", true, "Run SHACL validation and fold compliance into the score")
	cmd.Flags().StringVar(&dqvLang, "dqv", "", "Emit a DQV JSON-LD document localized to this language (en, es)")
	return cmd
}

func newExportCmd(setup setupFunc) *cobra.Command {
	var flags profileFlags
	var format, out string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Validate and export the report as Turtle or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			sel, err := flags.selection()
			if err != nil {
				return err
			}
			content, err := readInput(args[0])
			if err != nil {
				return err
			}

			svc := shacl.NewService(cfg, logger)
			defer svc.Close()
			report, err := svc.ValidateRDF(cmd.Context(), content, sel, rdf.DetectFormat(content))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				return shacl.ExportCSV(w, report)
			case "turtle", "":
				_, err := fmt.Fprint(w, shacl.ExportTurtle(report))
				return err
			default:
				return fmt.Errorf("unsupported export format %q (supported: turtle, csv)", format)
			}
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "turtle", "Export format (turtle, csv)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}

func newUpdateShapesCmd(setup setupFunc) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "update-shapes",
		Short: "Refresh the local shape mirror from the pinned upstream URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			n, err := shacl.NewUpdater(cfg, logger).Update(cmd.Context(), force)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Shape mirror up to date")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %d shape files\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Refresh even when the update interval has not elapsed")
	return cmd
}

func parseFormat(name, content string) rdf.Format {
	switch name {
	case "turtle":
		return rdf.FormatTurtle
	case "ntriples":
		return rdf.FormatNTriples
	case "rdfxml":
		return rdf.FormatRDFXML
	default:
		return rdf.DetectFormat(content)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
