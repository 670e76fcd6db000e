package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-imsto/imbench/resizer"
)

var cmdList = &Command{
	UsageLine: "list",
	Short:     "list the compiled-in libraries",
	Long: `
List the registered libraries in report order. Vips and LibJPEG are
only present when built with the vips or libjpeg tag.
`,
}

func init() {
	cmdList.Run = runList
}

func runList(args []string) bool {
	printLibraries(os.Stdout)
	return true
}

func printLibraries(w io.Writer) {
	for _, rz := range resizer.All() {
		scale := "no"
		if resizer.CanScale(rz) {
			scale = "yes"
		}
		fmt.Fprintf(w, "%-10s in-memory resize: %s\n", rz.Name(), scale)
	}
}
