package cli

import (
	"fmt"

	"github.com/shoxxdj/lfd/internal/report"
)

const programName = "lfd"

// ShowVersion displays version information
func (c *CLI) ShowVersion() {
	t := report.NewTheme(c.stdout, c.colorEnabled())
	fmt.Fprintf(c.stdout, "%s version %s 🚀\n", t.Title.Render(programName), t.Success.Render(c.version))
	fmt.Fprintln(c.stdout, "Line For Do - Batch command executor")
}

// ShowHelp displays the help message
func (c *CLI) ShowHelp() {
	t := report.NewTheme(c.stdout, c.colorEnabled())
	w := c.stdout

	fmt.Fprintln(w, t.Title.Render("📋 lfd - Line For Do"))
	fmt.Fprintln(w, t.Label.Render("Execute a command for each line in a file"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, t.Title.Render("Usage:"))
	fmt.Fprintf(w, "  %s %s\n\n", programName, t.Warning.Render("[options] <file> <variable> <command> [args...]"))

	fmt.Fprintln(w, t.Title.Render("Arguments:"))
	fmt.Fprintf(w, "  %s      📄 File with one value per line\n", t.Label.Render("file"))
	fmt.Fprintf(w, "  %s  🔤 Placeholder replaced by each value in the command\n", t.Label.Render("variable"))
	fmt.Fprintf(w, "  %s   ⚙️  Command to execute, with its arguments\n", t.Label.Render("command"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, t.Title.Render("Options:"))
	fmt.Fprintf(w, "  %s        🔇 Only show the commands' own output\n", t.Label.Render("-q, --quiet"))
	fmt.Fprintf(w, "  %s         📖 Show this help\n", t.Label.Render("-h, --help"))
	fmt.Fprintf(w, "  %s      🔖 Show version\n", t.Label.Render("-v, --version"))
	fmt.Fprintf(w, "  %s         🎨 Disable colored output\n", t.Label.Render("--no-color"))
	fmt.Fprintf(w, "  %s  🪵 Diagnostic log level (default %s)\n", t.Label.Render("--log-level LEVEL"), "warn")
	fmt.Fprintf(w, "  %s      🧾 Write a YAML or JSON run report\n", t.Label.Render("--report PATH"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Options must come before <file>.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, t.Title.Render("Examples:"))
	examples := []struct{ title, line string }{
		{"💾 Download URLs:", "urls.txt URL curl -s -o URL.html URL"},
		{"📁 Create directories:", "dirs.txt DIR mkdir -p /tmp/DIR"},
		{"🖼️  Convert images:", "images.txt IMG convert IMG IMG.png"},
		{"🔍 Search in files:", "terms.txt TERM grep -i TERM notes.txt"},
	}
	for i, ex := range examples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  %s\n", t.Success.Render(ex.title))
		fmt.Fprintf(w, "    %s %s\n", programName, ex.line)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s Empty lines are ignored. Exit status is 0 once the file has been processed, even if some commands failed.\n",
		t.Warning.Render("Note:"))
}
