package cmd

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/nfrund/veneer/internal/app"
	"github.com/nfrund/veneer/internal/config"
	"github.com/nfrund/veneer/internal/theme"
	"github.com/nfrund/veneer/internal/themes"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the themes visible to the application",
	Long: `Runs the same discovery the application performs at startup: the
packaged themes directory under the root, then each configured search
path. Themes declaring a different application identifier are filtered
out unless --all is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")

		manager, err := newManager(all)
		if err != nil {
			log.Fatalf("Failed to load themes: %v", err)
		}

		list, err := manager.ListThemes()
		if err != nil {
			log.Fatalf("Failed to list themes: %v", err)
		}

		if len(list) == 0 {
			fmt.Println("No themes found.")
			return
		}

		printThemes(list)
	},
}

func init() {
	listCmd.Flags().Bool("all", false, "include themes targeting other applications")
	rootCmd.AddCommand(listCmd)
}

// newManager builds a quiet theme manager from the CLI flags and the
// environment configuration.
func newManager(all bool) (*themes.Manager, error) {
	cfg := config.New()
	if themePath != "" {
		cfg.ThemePaths = config.SplitThemePaths(themePath)
	}
	id := appID
	if id == "" {
		id = cfg.AppID
	}

	a := app.New(app.Options{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RootPath: rootPath,
	})

	opts := []themes.Option{themes.WithLogging(false)}
	if all {
		opts = append(opts, themes.WithValidator(func(string) bool { return true }))
	}
	return themes.New(a, id, opts...)
}

// printThemes renders the themes as an aligned table.
func printThemes(list []*theme.Theme) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "IDENTIFIER\tNAME\tVERSION\tAPPLICATION\tPATH")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Identifier(), t.Info.Name, t.Info.Version, t.Application(), t.Path())
	}
}
