package buildsys

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dccsillag/tap/internal/msg"
)

// systemPrefix is where installs land when running as the superuser.
const systemPrefix = "/usr/local"

func (o *Orchestrator) resolvePrefix(explicit string) (string, error) {
	return resolveInstallPrefix(explicit, os.Geteuid())
}

// resolveInstallPrefix decides where installed artifacts go, in priority
// order: an explicit prefix is used verbatim; the superuser gets the
// system-wide default; everyone else gets the parent of their per-user
// executable directory (so binaries land where the shell already looks).
func resolveInstallPrefix(explicit string, euid int) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if euid == 0 {
		return systemPrefix, nil
	}

	binDir, err := userBinDir()
	if err != nil {
		return "", fmt.Errorf("couldn't determine the default install prefix: %w", err)
	}
	return filepath.Dir(binDir), nil
}

// userBinDir returns the conventional per-user executable directory:
// $XDG_BIN_HOME if set, otherwise ~/.local/bin.
func userBinDir() (string, error) {
	if dir := os.Getenv("XDG_BIN_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// askForConfirmation prompts on stdin and returns true only for an explicit
// yes. Everything else, including EOF, declines.
func askForConfirmation(format string, a ...any) bool {
	reader := bufio.NewReader(os.Stdin)
	prompt := fmt.Sprintf(format, a...)

	for {
		fmt.Printf("%s [y/N]: ", prompt)
		response, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
		msg.Warn("please answer y or n")
	}
}
