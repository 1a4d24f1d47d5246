package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/core"
	"github.com/leocov-dev/packmedic/fileio"
	"github.com/leocov-dev/packmedic/internal/cmdshared"
	"github.com/leocov-dev/packmedic/internal/shared"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:     "check [dir]",
	Short:   "Check the resource pack for problems and offer fixes",
	Aliases: []string{"doctor", "audit"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			viper.Set("dir", args[0])
		}

		// A pass that hits a finding with no quick fix is abandoned rather
		// than resumed: the operator edits the file by hand and the whole
		// check runs again from the top, fresh session included.
		for {
			err := runCheckPass()
			if err == nil {
				// Keep the console window open for double-click users.
				if !viper.GetBool("non-interactive") {
					cmdshared.AwaitEnter("Press enter to exit... ")
				}
				return
			}

			switch {
			case core.IsFatal(err):
				fmt.Println(err)
				cmdshared.AwaitEnter("Press enter to exit... ")
				os.Exit(1)
			case core.IsNoQuickFix(err):
				fmt.Println(err)
				fmt.Println("No quick fix for this one; correct the file by hand.")
				if viper.GetBool("non-interactive") {
					os.Exit(1)
				}
				if !cmdshared.PromptYesNo("Run the whole check again? [Y/n]: ") {
					os.Exit(1)
				}
			default:
				shared.Exitf("Unexpected failure: %s\n", err)
			}
		}
	},
}

func runCheckPass() error {
	packDir, metaPath, err := shared.GetMetaPath()
	if err != nil {
		return err
	}
	if !fileio.FileExists(metaPath) {
		return core.Fatalf("can't find `%s` in %s; is this really a resource pack?", viper.GetString("meta-file"), packDir)
	}
	if !fileio.DirExists(filepath.Join(packDir, "assets", "minecraft")) {
		return core.Fatalf("`assets/minecraft` not found in %s; is this really a resource pack?", packDir)
	}

	allowUnused, err := compileAllowUnused()
	if err != nil {
		return err
	}

	if viper.GetBool("check.skip-backup") {
		fmt.Println("Skipping backup.")
	} else {
		backupDir, err := fileio.BackupTree(packDir, viper.GetString("meta-file"), viper.GetString("check.hash-format"))
		if err != nil {
			return err
		}
		fmt.Printf("Backed up the pack to %s\n", backupDir)
	}

	mode, err := cmdshared.AskFixMode(viper.GetBool("check.report-only"))
	if err != nil {
		return err
	}
	sess := core.NewSession(cmdshared.NewConfirmer(mode), fileio.NewJSONWriter())

	meta, err := fileio.LoadMetaFile(metaPath)
	if err != nil {
		return core.Fatalf("can't read %s: %v", core.ResolvePath(metaPath), err)
	}
	if err := core.CheckMeta(sess, meta); err != nil {
		return err
	}

	sets, err := fileio.ScanAssets(sess, packDir)
	if err != nil {
		return err
	}

	mismatches := sets.Reconcile()
	if allowUnused != nil {
		if err := mismatches.FilterAllowed(allowUnused); err != nil {
			return err
		}
	}
	if !mismatches.Empty() {
		return core.NoQuickFixf("some declared names don't match the files on disk:\n%s", mismatches.Describe())
	}

	printSummary(sess)
	return nil
}

func compileAllowUnused() (*regexp2.Regexp, error) {
	pattern := viper.GetString("check.allow-unused")
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return nil, core.Fatalf("the --allow-unused pattern doesn't compile: %v", err)
	}
	return re, nil
}

func printSummary(sess *core.Session) {
	if sess.Issues() == 0 {
		fmt.Println("No issues found. The pack looks healthy.")
		return
	}
	fmt.Printf("Found %d issue(s): %d fixed, %d declined.\n", sess.Issues(), sess.Fixes(), sess.Declined())
	if sess.Fixes() > 0 {
		fmt.Println("Reload the pack in game (F3+T) and check the result.")
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("skip-backup", false, "Don't back up the pack before making changes")
	_ = viper.BindPFlag("check.skip-backup", checkCmd.Flags().Lookup("skip-backup"))
	checkCmd.Flags().Bool("report-only", false, "Report findings without changing any files")
	_ = viper.BindPFlag("check.report-only", checkCmd.Flags().Lookup("report-only"))
	checkCmd.Flags().String("allow-unused", "", "Regex for unused files that should not be reported")
	_ = viper.BindPFlag("check.allow-unused", checkCmd.Flags().Lookup("allow-unused"))
	addHashFormatFlag("check", checkCmd.Flags())
}
