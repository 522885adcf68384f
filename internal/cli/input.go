package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/msgcat"
)

const opReadDiskCount = "cli.read_disks"

// ReadDiskCount takes the disk count from the single positional argument,
// or prompts on prompt and reads one token from in when there is none.
// Prompt and error text come from the input.* keys of cat.
func ReadDiskCount(cat *msgcat.Catalog, args []string, in io.Reader, prompt io.Writer) (int, error) {
	var n int
	if len(args) == 1 {
		v, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return 0, invalidInput(cat, "input.arg_not_int")
		}
		n = v
	} else {
		fmt.Fprint(prompt, cat.MustRender("input.prompt", nil))
		sc := bufio.NewScanner(in)
		sc.Split(bufio.ScanWords)
		if !sc.Scan() {
			return 0, invalidInput(cat, "input.not_int")
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, invalidInput(cat, "input.not_int")
		}
		n = v
	}
	if n <= 0 {
		return 0, invalidInput(cat, "input.too_few")
	}
	return n, nil
}

func invalidInput(cat *msgcat.Catalog, key string) error {
	return &domain.GameError{Op: opReadDiskCount, Kind: domain.ErrInvalidInput, Msg: cat.MustRender(key, nil)}
}

var negativeInt = regexp.MustCompile(`^-\d+$`)

// normalizeArgs moves negative integers behind a "--" so they reach the
// disk count check instead of failing as unknown shorthand flags.
func normalizeArgs(args []string) []string {
	var flags, positional []string
	for i, a := range args {
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if negativeInt.MatchString(a) {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
	}
	if len(positional) == 0 {
		return args
	}
	out := append(flags, "--")
	return append(out, positional...)
}
