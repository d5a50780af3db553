package input

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
)

// readClipboard reads text content from the system clipboard
func readClipboard() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return readClipboardMacOS()
	case "linux":
		return readClipboardLinux()
	default:
		return "", fmt.Errorf("clipboard read not supported on %s", runtime.GOOS)
	}
}

func readClipboardMacOS() (string, error) {
	cmd := exec.Command("pbpaste")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return out.String(), nil
}

func readClipboardLinux() (string, error) {
	// Try wl-paste first (Wayland)
	if _, err := exec.LookPath("wl-paste"); err == nil {
		cmd := exec.Command("wl-paste", "--no-newline")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err == nil {
			return out.String(), nil
		}
	}

	// Fall back to xclip (X11)
	if _, err := exec.LookPath("xclip"); err == nil {
		cmd := exec.Command("xclip", "-selection", "clipboard", "-o")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err == nil {
			return out.String(), nil
		}
	}

	return "", fmt.Errorf("no clipboard utility found (install wl-paste or xclip)")
}
