package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/report"
	"Girder/internal/table"
)

var (
	pdfOut    string
	pngDir    string
	beamImage string
)

var rootCmd = &cobra.Command{
	Use:   "girder",
	Short: "Simply supported beam analysis from tabular load data",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV or spreadsheet of point loads (or precomputed results)",
	Long: `Reads a tabular file holding either point loads (Position/Load columns)
or precomputed results (x/shear/moment columns), solves the support
reactions when needed and prints shear and moment diagrams.

Examples:
  girder analyze loads.csv
  girder analyze loads.xlsx --pdf report.pdf
  girder analyze results.csv --png out/`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&pdfOut, "pdf", "", "write the full PDF report to this path")
	analyzeCmd.Flags().StringVar(&pngDir, "png", "", "write shear.png and moment.png into this directory")
	analyzeCmd.Flags().StringVar(&beamImage, "image", "", "beam configuration figure for the report (default: drawn)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	tbl, err := table.Load(f, args[0])
	if err != nil {
		return err
	}
	tbl.MapColumns()
	if err := tbl.Validate(); err != nil {
		return err
	}

	mode := tbl.Mode()
	var res analysis.Result
	if mode == analysis.ModePlotOnly {
		res = analysis.FromSamples(tbl.Samples())
	} else {
		res = analysis.Analyze(tbl.Loads())
	}

	fmt.Printf("Mode: %s\n", mode)
	if mode == analysis.ModeCalculate {
		fmt.Printf("Support reactions: R_A = %.2f kN, R_B = %.2f kN\n", res.RA, res.RB)
	}
	fmt.Println()
	fmt.Println(diagram.ASCIIShear(res.Samples))
	fmt.Println()
	fmt.Println(diagram.ASCIIMoment(res.Samples))

	if pngDir != "" {
		if err := os.MkdirAll(pngDir, 0755); err != nil {
			return err
		}
		if err := diagram.SaveShear(res.Samples, filepath.Join(pngDir, "shear.png")); err != nil {
			return err
		}
		if err := diagram.SaveMoment(res.Samples, filepath.Join(pngDir, "moment.png")); err != nil {
			return err
		}
		fmt.Printf("\nDiagrams written to %s\n", pngDir)
	}

	if pdfOut != "" {
		if err := writeReport(tbl, res, mode); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", pdfOut)
	}
	return nil
}

func writeReport(tbl *table.Table, res analysis.Result, mode analysis.Mode) error {
	workDir, err := os.MkdirTemp("", "girder-cli-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	img := beamImage
	if img == "" {
		img = filepath.Join(workDir, "beam.png")
		if err := diagram.SaveDefaultBeam(img); err != nil {
			return err
		}
	}

	out, err := os.Create(pdfOut)
	if err != nil {
		return err
	}
	defer out.Close()
	return report.Generate(out, tbl, res, mode, img, workDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
