package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/refnote/internal/footnote"
	"github.com/dgallion1/refnote/internal/parser"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "refnote",
		Short: "Convert in-text references to numbered footnotes",
		Long: `Refnote rewrites in-text references (URLs in round brackets,
citations in square brackets) as sequentially numbered footnotes
appended at the end of the document. HTML input is stripped to
plain text first.`,
		Version: version,
	}

	rootCmd.AddCommand(convertCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	var (
		outPath   string
		suffix    string
		mode      string
		separator string
		schemes     []string
		sicTokens   []string
		toStdout    bool
		pdfFallback bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a document and write the footnoted copy alongside it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			filename := filepath.Base(path)

			p, err := parser.ForFile(filename)
			if err != nil {
				return err
			}
			if pp, ok := p.(*parser.PDFParser); ok {
				pp.FallbackPdftotext = pdfFallback
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := p.Parse(f, filename)
			if err != nil {
				return err
			}

			m := doc.Mode
			if mode != "" {
				if m, err = footnote.ParseMode(mode); err != nil {
					return err
				}
			}

			opts := footnote.DefaultOptions()
			if len(schemes) > 0 {
				opts.URLSchemes = schemes
			}
			if len(sicTokens) > 0 {
				opts.SicTokens = sicTokens
			}
			if separator != "" {
				opts.Separator = separator
			}

			out, err := footnote.Convert(doc.Text, m, opts)
			if err != nil {
				return err
			}

			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			dest := outPath
			if dest == "" {
				dest = derivedPath(path, suffix)
			}
			if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "explicit output path")
	cmd.Flags().StringVar(&suffix, "suffix", "_plaintext", "suffix appended to the input filename")
	cmd.Flags().StringVar(&mode, "mode", "", "force input mode (plaintext or html)")
	cmd.Flags().StringVar(&separator, "separator", "", "footnote separator line")
	cmd.Flags().StringSliceVar(&schemes, "schemes", nil, "URL scheme prefixes that qualify as references")
	cmd.Flags().StringSliceVar(&sicTokens, "sic", nil, "square-bracket tokens left untouched")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the result instead of writing a file")
	cmd.Flags().BoolVar(&pdfFallback, "pdf-fallback", true, "fall back to pdftotext when Go PDF extraction fails")

	return cmd
}

// derivedPath appends the suffix to the filename base: myfile.txt becomes
// myfile_plaintext.txt. Binary input formats come out as .txt since the
// output is always plain text.
func derivedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	switch strings.ToLower(ext) {
	case ".pdf", ".docx":
		ext = ".txt"
	}
	return base + suffix + ext
}
