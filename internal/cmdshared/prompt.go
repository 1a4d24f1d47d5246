package cmdshared

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/internal/shared"
)

func PromptYesNo(prompt string) bool {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Println("Y (non-interactive mode)")
		return true
	}
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		shared.Exitf("Failed to prompt user: %v\n", err)
	}

	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	if len(ansNormal) > 0 && ansNormal[0] == 'n' {
		return false
	}
	return true
}

// AwaitEnter blocks until the operator presses enter, so a console window
// opened by double-click does not vanish with the message unread.
func AwaitEnter(prompt string) {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Println()
		return
	}
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
