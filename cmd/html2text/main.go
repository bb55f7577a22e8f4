package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattn/go-html2text"
	"github.com/mattn/go-html2text/internal/wrap"
)

type flags struct {
	ignoreErrors bool
	dropLinks    bool
	dropImages   bool
	footerURLs   bool
	charset      string
	config       string
	width        int
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "html2text [input [output]]",
		Short: "Convert HTML into plain text",
		Long: `html2text reads an HTML document from input (or stdin) and writes a
plain text rendering to output (or stdout).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&f.ignoreErrors, "ignore-errors", false, "Convert badly formed HTML on a best-effort basis")
	fs.BoolVar(&f.dropLinks, "drop-links", false, "Keep link text only")
	fs.BoolVar(&f.dropImages, "drop-images", false, "Omit image alt text")
	fs.BoolVar(&f.footerURLs, "footer-urls", false, "List link targets after the text")
	fs.StringVar(&f.charset, "charset", "", "Input character set (default: detect)")
	fs.StringVar(&f.config, "config", "", "YAML file with conversion options")
	fs.IntVar(&f.width, "width", 0, "Wrap lines at this many columns (0 disables)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose logging")
	return cmd
}

func options(cmd *cobra.Command, f *flags) (*html2text.Option, error) {
	opt := &html2text.Option{}
	if f.config != "" {
		fp, err := os.Open(f.config)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		if opt, err = html2text.LoadOption(fp); err != nil {
			return nil, fmt.Errorf("%s: %w", f.config, err)
		}
	}

	fs := cmd.Flags()
	if fs.Changed("ignore-errors") {
		opt.IgnoreErrors = f.ignoreErrors
	}
	if fs.Changed("drop-links") {
		opt.DropLinks = f.dropLinks
	}
	if fs.Changed("drop-images") {
		opt.DropImages = f.dropImages
	}
	if fs.Changed("footer-urls") {
		opt.FooterURLs = f.footerURLs
	}
	if fs.Changed("charset") {
		opt.CharSet = f.charset
	}
	return html2text.NewOption(opt)
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opt, err := options(cmd, f)
	if err != nil {
		return err
	}
	opt.Logger = logger

	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		fp, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fp.Close()
		r = fp
	}

	var buf bytes.Buffer
	if err := html2text.Convert(&buf, r, opt); err != nil {
		return err
	}
	text := wrap.String(buf.String(), f.width)
	logger.Debug("converted", "input", inputName(args), "chars", len(text))

	if len(args) < 2 {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(args[1], []byte(text), 0o644)
}

func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>"
	}
	return args[0]
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
