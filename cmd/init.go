package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/core"
	"github.com/leocov-dev/packmedic/fileio"
	"github.com/leocov-dev/packmedic/internal/shared"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise a new resource pack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packDir, metaPath, err := shared.GetMetaPath()
		if err != nil {
			shared.Exitln(err)
		}
		if err := checkReinit(metaPath); err != nil {
			shared.Exitln(err)
		}

		format, err := getPackFormat()
		if err != nil {
			shared.Exitln(err)
		}
		description := getDescription(cmd, packDir)

		doc := core.NewMetaDocument(metaPath, core.DefaultMeta())
		doc.SetPackFormat(format)
		doc.SetDescription(description)
		writer := fileio.NewJSONWriter()
		if err := writer.Write(doc); err != nil {
			shared.Exitln(err)
		}

		for _, dir := range []string{
			filepath.Join(packDir, "assets", "minecraft", "models", "item"),
			filepath.Join(packDir, "assets", "minecraft", "textures", "item"),
		} {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				shared.Exitln(err)
			}
		}

		fmt.Println(viper.GetString("meta-file") + " created!")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("description", "", "The description of the pack (omit to define interactively)")
	initCmd.Flags().Int("pack-format", 0, "The pack_format number to use (omit to define interactively)")
	_ = viper.BindPFlag("init.pack-format", initCmd.Flags().Lookup("pack-format"))
	initCmd.Flags().String("game-version", "", "Pick the pack_format matching this Minecraft version")
	_ = viper.BindPFlag("init.game-version", initCmd.Flags().Lookup("game-version"))
	initCmd.Flags().BoolP("reinit", "r", false, "Recreate the metadata file if it already exists, rather than exiting")
	_ = viper.BindPFlag("init.reinit", initCmd.Flags().Lookup("reinit"))
}

func initReadValue(prompt string, def string) string {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Printf("%s\n", def)
		return def
	}
	value, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		shared.Exitf("Error reading input: %s\n", err)
	}
	// Trims both CR and LF
	value = strings.TrimSpace(strings.TrimRight(value, "\r\n"))
	if len(value) > 0 {
		return value
	}
	return def
}

func checkReinit(metaPath string) error {
	_, err := os.Stat(metaPath)
	if err == nil && !viper.GetBool("init.reinit") {
		return errors.New("pack metadata file already exists, use -r to override")
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error checking metadata file: %s", err)
	}
	return nil
}

func getPackFormat() (int, error) {
	if version := viper.GetString("init.game-version"); version != "" {
		pf, ok := core.FormatForGameVersion(version)
		if !ok {
			return 0, fmt.Errorf("Minecraft %s is not in the pack format catalog; pass --pack-format instead", version)
		}
		return pf.Format, nil
	}
	if format := viper.GetInt("init.pack-format"); format != 0 {
		return format, nil
	}
	def := strconv.Itoa(core.DefaultPackFormat)
	value := initReadValue("Pack format ["+def+"]: ", def)
	format, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("pack format must be a whole number, got %q", value)
	}
	return format, nil
}

func getDescription(cmd *cobra.Command, packDir string) string {
	description, err := cmd.Flags().GetString("description")
	if err != nil || len(description) == 0 {
		directoryName := filepath.Base(packDir)
		if directoryName != "." && len(directoryName) > 0 {
			// Turn directory name into a space-seperated proper name
			description = titlecase.Title(strings.ReplaceAll(strings.ReplaceAll(strings.Join(camelcase.Split(directoryName), " "), " - ", " "), " _ ", " "))
			description = initReadValue("Description ["+description+"]: ", description)
		} else {
			description = initReadValue("Description: ", "")
		}
	}

	return description
}
