package player

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ChoosePrompt  = "Choose a number by typing its index to start the game:"
	MsgBadChoice  = "Invalid choice"
	MsgNotANumber = "Enter a number."
)

// ChooseStart lists the candidates with 1-based indices and reads a choice
// until a valid index is entered.
func ChooseStart(in LineReader, out io.Writer, candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no starting numbers to choose from")
	}

	fmt.Fprintln(out, ChoosePrompt)
	for i, n := range candidates {
		fmt.Fprintf(out, "[%d] %d\n", i+1, n)
	}

	in.SetPrompt("")
	for {
		line, err := in.Readline()
		if err != nil {
			return 0, err
		}
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(out, MsgNotANumber)
			continue
		}
		if index < 1 || index > len(candidates) {
			fmt.Fprintln(out, MsgBadChoice)
			continue
		}
		return candidates[index-1], nil
	}
}
