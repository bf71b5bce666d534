package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nfrund/veneer/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Explains whether a directory is a loadable theme",
	Long: `The theme loaders skip anything that is not a valid theme without a
word, which is the right behavior at startup and unhelpful when you are
authoring a theme. This command runs the same checks and reports which
one fails.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !validateDir(args[0]) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateDir runs the loader checks against dir, reporting each step.
func validateDir(dir string) bool {
	fsys := afero.NewOsFs()
	basename := filepath.Base(filepath.Clean(dir))

	if !theme.ValidIdentifier(basename) {
		fmt.Printf("FAIL: directory name %q is not a valid identifier (want ^[A-Za-z_][A-Za-z0-9_]*$)\n", basename)
		return false
	}
	fmt.Printf("ok: directory name %q is a valid identifier\n", basename)

	t, err := theme.Load(fsys, dir)
	if err != nil {
		fmt.Printf("FAIL: %v\n", err)
		return false
	}
	fmt.Printf("ok: loaded metadata for %q (application %q)\n", t.Info.Name, t.Application())

	if t.Identifier() != basename {
		fmt.Printf("FAIL: declared identifier %q does not match directory name %q\n", t.Identifier(), basename)
		return false
	}
	fmt.Printf("ok: declared identifier matches directory name\n")

	if appID != "" && t.Application() != appID {
		fmt.Printf("FAIL: theme targets application %q, not %q\n", t.Application(), appID)
		return false
	}

	filters := map[string]string{".css": "cssmin", ".js": "rjsmin"}
	for _, ext := range []string{".css", ".js"} {
		manifest, bundle := t.Bundle(ext, filters[ext])
		if bundle != nil {
			fmt.Printf("ok: %s -> %s\n", manifest, bundle.Output)
		} else {
			fmt.Printf("ok: %s\n", manifest)
		}
	}

	fmt.Println("Theme is loadable.")
	return true
}
