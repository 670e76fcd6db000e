package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/go-imsto/imbench/bench"
	"github.com/go-imsto/imbench/config"
	cimg "github.com/go-imsto/imbench/image"
)

var cmdInfo = &Command{
	UsageLine: "info",
	Short:     "show the image set the benchmarks will use",
	Long: `
Find the image directory above the working directory, then print it, the
output directory and the attributes of every image that will be loaded.
`,
}

func init() {
	cmdInfo.Run = runInfo
}

func runInfo(args []string) bool {
	wd, err := os.Getwd()
	if err != nil {
		logger().Fatalw("getwd fail", "err", err)
	}
	c := config.Current
	ws, err := bench.NewWorkspace(wd, c.ImageDir, c.OutputDir, c.MaxImages)
	if err != nil {
		errorf("%s", err)
		setExitStatus(1)
		return true
	}
	printWorkspace(os.Stdout, ws)
	return true
}

func printWorkspace(w io.Writer, ws *bench.Workspace) {
	fmt.Fprintf(w, "images: %s\n", ws.ImageDir)
	fmt.Fprintf(w, "output: %s\n\n", ws.OutputDir)

	var total uint64
	for _, name := range ws.Images {
		attr, err := cimg.Probe(name)
		if err != nil {
			fmt.Fprintf(w, "  %-32s %s\n", filepath.Base(name), err)
			continue
		}
		total += uint64(attr.Size)
		line := attr.String()
		if attr.Orientation > 1 {
			line += fmt.Sprintf(" orientation %d", attr.Orientation)
		}
		fmt.Fprintf(w, "  %-32s %s\n", filepath.Base(name), line)
	}
	fmt.Fprintf(w, "\n%d files, %s\n", len(ws.Images), humanize.Bytes(total))
}
