package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/fileio"
	"github.com/leocov-dev/packmedic/internal/shared"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup [dir]",
	Short: "Back up the pack without running any checks",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			viper.Set("dir", args[0])
		}
		packDir, err := shared.GetPackDir()
		if err != nil {
			shared.Exitln(err)
		}
		if !fileio.DirExists(filepath.Join(packDir, "assets")) {
			shared.Exitf("`assets` not found in %s; is this really a resource pack?\n", packDir)
		}

		backupDir, err := fileio.BackupTree(packDir, viper.GetString("meta-file"), viper.GetString("backup.hash-format"))
		if err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Backed up the pack to %s\n", backupDir)
	},
}

// backupListCmd represents the backup list command
var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the backups taken for this pack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packDir, err := shared.GetPackDir()
		if err != nil {
			shared.Exitln(err)
		}
		backups, err := fileio.ListBackups(packDir)
		if err != nil {
			shared.Exitln(err)
		}
		if len(backups) == 0 {
			fmt.Println("No backups found.")
			return
		}
		for _, b := range backups {
			fmt.Printf("%s  %d file(s), %s hashes, taken %s\n",
				b.Dir, len(b.Manifest.Files), b.Manifest.HashFormat,
				b.Manifest.Created.Format(time.RFC3339))
		}
	},
}

// addHashFormatFlag registers a --hash-format flag under the command's own
// viper namespace. Commands must not share a key here: viper keeps one flag
// instance per key, so a shared key would silently read another command's
// flag.
func addHashFormatFlag(prefix string, fs *pflag.FlagSet) {
	fs.String("hash-format", "sha256", "The hash format recorded in backup manifests (sha1, sha256, sha512, md5, murmur2)")
	_ = viper.BindPFlag(prefix+".hash-format", fs.Lookup("hash-format"))
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd)

	addHashFormatFlag("backup", backupCmd.Flags())
}
