package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: phototable <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a photo table PDF (default command)")
	fmt.Fprintln(w, "  doctor     Check Chrome and system requirements")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'phototable help generate' for details on generation flags.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: phototable [generate] <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a PDF with photos arranged in a two-column captioned table.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Image files, a directory of images, or album manifests")
	fmt.Fprintln(w, "           (.yaml). Without arguments the last used directory is tried.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (.pdf) or directory")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>          PDF rendering timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --title <s>            Document title")
	fmt.Fprintln(w, "      --preamble <path>      Markdown file rendered above the table")
	fmt.Fprintln(w, "      --quality <n>          JPEG quality (1-100, default 85)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>        Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>      Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>           Margin in cm (0.5-5.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table:")
	fmt.Fprintln(w, "      --table-width <f>      Table width in cm (default 16 portrait, 24 landscape)")
	fmt.Fprintln(w, "      --rows <n>             Rows per page (default 4 portrait, 2 landscape)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Captions:")
	fmt.Fprintln(w, "      --caption <s>          Template with {number} and {filename}")
	fmt.Fprintln(w, "      --caption-font <s>     Font family")
	fmt.Fprintln(w, "      --caption-size <n>     Font size in pt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s>  Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>      Custom footer text")
	fmt.Fprintln(w, "      --footer-date <s>      Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                             Tokens: YYYY, YY, MM, M, DD, D")
	fmt.Fprintln(w, "      --footer-page-number   Show page numbers")
	fmt.Fprintln(w, "      --no-footer            Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>            Style name (plain, grid) or CSS file path")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --html                 Write HTML alongside the PDF")
	fmt.Fprintln(w, "      --html-only            Write HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-photo progress and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: phototable doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome/Chromium availability and system requirements.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: phototable version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: phototable help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
