package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// promptString asks for a value, returning def on an empty answer.
func promptString(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	return input
}

// promptInt asks for a positive integer, returning def on an empty or
// invalid answer.
func promptInt(reader *bufio.Reader, label string, def int) int {
	input := promptString(reader, label, strconv.Itoa(def))
	if v, err := strconv.Atoi(input); err == nil && v > 0 {
		return v
	}
	return def
}

// promptYesNo asks a yes/no question; anything but y/yes is no.
func promptYesNo(reader *bufio.Reader, label string) bool {
	fmt.Printf("%s [y/N]: ", label)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// promptPassword reads a secret without echo.
func promptPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
