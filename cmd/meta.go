package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/core"
	"github.com/leocov-dev/packmedic/fileio"
	"github.com/leocov-dev/packmedic/internal/cmdshared"
	"github.com/leocov-dev/packmedic/internal/shared"
)

// metaCmd represents the meta command
var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Check only the pack metadata file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packDir, metaPath, err := shared.GetMetaPath()
		if err != nil {
			shared.Exitln(err)
		}
		if !fileio.FileExists(metaPath) {
			shared.Exitf("can't find `%s` in %s; is this really a resource pack?\n", viper.GetString("meta-file"), packDir)
		}

		mode, err := cmdshared.AskFixMode(viper.GetBool("meta.report-only"))
		if err != nil {
			shared.Exitln(err)
		}
		sess := core.NewSession(cmdshared.NewConfirmer(mode), fileio.NewJSONWriter())

		meta, err := fileio.LoadMetaFile(metaPath)
		if err != nil {
			shared.Exitf("can't read %s: %v\n", core.ResolvePath(metaPath), err)
		}
		if err := core.CheckMeta(sess, meta); err != nil {
			shared.Exitln(err)
		}
		if version := viper.GetString("meta.game-version"); version != "" {
			if err := checkGameVersion(sess, meta, version); err != nil {
				shared.Exitln(err)
			}
		}

		printSummary(sess)
	},
}

// metaFormatsCmd represents the meta formats command
var metaFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Print the pack_format to game version table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, pf := range core.PackFormats {
			fmt.Printf("%3d  %s\n", pf.Format, pf.GameRange())
		}
	},
}

// checkGameVersion cross-checks the document's pack_format against the
// format the given game version expects and offers the right value as a fix.
func checkGameVersion(sess *core.Session, doc *core.MetaDocument, version string) error {
	want, ok := core.FormatForGameVersion(version)
	if !ok {
		latest := core.LatestFormat()
		fmt.Printf("Minecraft %s is not in the pack format catalog (newest known: %d for %s), skipping this check.\n",
			version, latest.Format, latest.GameRange())
		return nil
	}
	if current, ok := doc.PackFormat(); ok && current == want.Format {
		return nil
	}
	if !sess.Confirm(fmt.Sprintf("`pack_format` in %s does not match Minecraft %s, it can be set to %d", doc.Name(), version, want.Format)) {
		return nil
	}
	doc.SetPackFormat(want.Format)
	return sess.SaveDoc(doc)
}

func init() {
	rootCmd.AddCommand(metaCmd)
	metaCmd.AddCommand(metaFormatsCmd)

	metaCmd.Flags().String("game-version", "", "Cross-check pack_format against this Minecraft version")
	_ = viper.BindPFlag("meta.game-version", metaCmd.Flags().Lookup("game-version"))
	metaCmd.Flags().Bool("report-only", false, "Report findings without changing any files")
	_ = viper.BindPFlag("meta.report-only", metaCmd.Flags().Lookup("report-only"))
}
