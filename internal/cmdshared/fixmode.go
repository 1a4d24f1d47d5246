package cmdshared

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	wmenu "gopkg.in/dixonwille/wmenu.v4"

	"github.com/leocov-dev/packmedic/core"
)

// FixMode is the run-wide prompt policy, chosen once at the start of a pass.
type FixMode int

const (
	FixModeAsk FixMode = iota
	FixModeAuto
	FixModeReport
)

func (m FixMode) String() string {
	switch m {
	case FixModeAuto:
		return "fix everything automatically"
	case FixModeReport:
		return "report only"
	}
	return "ask about every fix"
}

// AskFixMode presents the fix policy menu. reportOnly (from a command flag)
// wins outright; --yes and non-interactive mode short-circuit to automatic
// fixing.
func AskFixMode(reportOnly bool) (FixMode, error) {
	if reportOnly {
		return FixModeReport, nil
	}
	if viper.GetBool("yes") || viper.GetBool("non-interactive") {
		return FixModeAuto, nil
	}

	selected := FixModeAsk
	menu := wmenu.NewMenu("How should fixes be applied?")
	menu.Option("Ask about every fix", FixModeAsk, true, nil)
	menu.Option("Fix everything automatically", FixModeAuto, false, nil)
	menu.Option("Report only, change nothing", FixModeReport, false, nil)
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("didn't get a valid option")
		}
		selected = menuRes[0].Value.(FixMode)
		return nil
	})
	if err := menu.Run(); err != nil {
		return FixModeAsk, err
	}
	return selected, nil
}

// NewConfirmer returns the core.Confirmer implementing the chosen policy.
// Every implementation prints the finding first; they differ only in how the
// decision is made.
func NewConfirmer(mode FixMode) core.Confirmer {
	switch mode {
	case FixModeAuto:
		return autoConfirmer{}
	case FixModeReport:
		return reportConfirmer{}
	}
	return askConfirmer{}
}

type askConfirmer struct{}

func (askConfirmer) Confirm(question string) bool {
	fmt.Println(question)
	return PromptYesNo("Apply this fix? [Y/n]: ")
}

type autoConfirmer struct{}

func (autoConfirmer) Confirm(question string) bool {
	fmt.Println(question)
	fmt.Println("Fixing automatically.")
	return true
}

type reportConfirmer struct{}

func (reportConfirmer) Confirm(question string) bool {
	fmt.Println(question)
	fmt.Println("Not fixing (report only).")
	return false
}
