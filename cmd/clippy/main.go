package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/clippy"
	"github.com/esimov/clippy/utils"
)

const helpBanner = `
┌─┐┬  ┬┌─┐┌─┐┬ ┬
│  │  │├─┘├─┘└┬┘
└─┘┴─┘┴┴  ┴   ┴

Visual CSS clip-path polygon builder.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image (file, URL or - for stdin)")
	destination = flag.String("out", pipeName, "Destination of the clip path (- for stdout)")
	format      = flag.String("format", string(clippy.FormatCSS), "Output format: css or json")
	maskPath    = flag.String("mask", "", "Save the clipped silhouette to this image file")
	backdrop    = flag.String("backdrop", "", "Backdrop color of the silhouette (transparent if empty)")
	fillColor   = flag.String("fill", "", "Overlay fill color, e.g. #2196f366")
	handleColor = flag.String("handle", "", "Handle marker color, e.g. #e91e63")
	debug       = flag.Bool("debug", false, "Log the clipping state transitions")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	outFormat, err := clippy.ParseFormat(*format)
	if err != nil {
		flag.Usage()
		log.Fatal(utils.DecorateText("\n"+err.Error(), utils.ErrorMessage))
	}

	proc := &clippy.Processor{
		FillColor:   *fillColor,
		HandleColor: *handleColor,
		Backdrop:    *backdrop,
		MaskPath:    *maskPath,
		Format:      outFormat,
		Debug:       *debug,
	}
	op := &clippy.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
		utils.DecorateText("⇢ loading the source image...", utils.DefaultMessage),
	)
	proc.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)

	// Capture CTRL-C signal and restore the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		proc.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	// The Gio event loop must own the main thread, so the session runs in its own goroutine.
	go func() {
		now := time.Now()
		if err := proc.Execute(op); err != nil {
			log.Fatalf("%s\n\t%s",
				utils.DecorateText("Error running clippy:", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stderr, "Session time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
		os.Exit(0)
	}()
	app.Main()
}
