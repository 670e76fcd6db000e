package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-imsto/imbench/bench"
	"github.com/go-imsto/imbench/config"
)

var cmdMenu = &Command{
	UsageLine: "menu",
	Short:     "choose a benchmark from the interactive menu",
	Long: `
Print the benchmark menu, read one choice from stdin and run it
with the libraries and defaults of the IMBENCH_* environment.
This is also what imbench does without a command.
`,
}

const msgUnrecognized = "Unrecognized command."

func init() {
	cmdMenu.Run = runMenu
}

func runMenu(args []string) bool {
	suite, ok := chooseSuite(os.Stdin, os.Stdout)
	if !ok {
		fmt.Println(msgUnrecognized)
		return true
	}
	wd, err := os.Getwd()
	if err != nil {
		logger().Fatalw("getwd fail", "err", err)
	}
	if err = runBench(rootContext(), os.Stdout, wd, suite, settings{}.merge(config.Current), config.Current); err != nil {
		errorf("%s", err)
		setExitStatus(1)
	}
	return true
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w, "Choose an image resizing benchmarks:")
	fmt.Fprintln(w)
	for _, s := range bench.Suites() {
		fmt.Fprintf(w, "%d. %s\n", int(s), s.Title())
	}
	fmt.Fprintln(w)
}

// chooseSuite prints the menu to w and reads one line from r
func chooseSuite(r io.Reader, w io.Writer) (bench.Suite, bool) {
	printMenu(w)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	return parseChoice(line)
}

// parseChoice accepts only a menu number
func parseChoice(v string) (bench.Suite, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	for _, s := range bench.Suites() {
		if int(s) == n {
			return s, true
		}
	}
	return 0, false
}
