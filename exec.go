package clippy

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/esimov/clippy/utils"
	"golang.org/x/term"
)

// Processor options
type Processor struct {
	FillColor   string
	HandleColor string
	Backdrop    string
	MaskPath    string
	Format      Format
	Debug       bool
	Spinner     *utils.Spinner

	mu sync.Mutex     // serializes the exports of consecutive sessions
	wg sync.WaitGroup // pending exports
}

// Ops holds the source and destination of a clipping run.
type Ops struct {
	Src, Dst, PipeName string
}

// Execute loads the source image, opens the clipping window and writes the
// polygon of every completed session to the destination.
// It returns when the window is closed.
func (p *Processor) Execute(op *Ops) error {
	if p.Spinner == nil {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
			utils.DecorateText("⇢ loading the source image...", utils.DefaultMessage),
		)
		p.Spinner = utils.NewSpinner(msg, time.Millisecond*80, true)
	}
	if p.MaskPath != "" {
		if !utils.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(p.MaskPath))) {
			return fmt.Errorf("%w: %v", ErrUnsupportedFormat, p.MaskPath)
		}
	}

	p.Spinner.Start()
	img, err := op.loadImage()
	if err != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
			utils.DecorateText("loading the image failed ✘", utils.ErrorMessage),
		)
		p.Spinner.Stop()
		return err
	}
	p.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
		utils.DecorateText("click on the image to place the polygon vertices ✔", utils.SuccessMessage),
	)
	p.Spinner.Stop()

	title := "Clippy"
	if op.Src != op.PipeName {
		title = "Clippy ⇢ " + filepath.Base(op.Src)
	}
	gui, err := NewGUI(fitScreen(img, maxPreviewX, maxPreviewY), title)
	if err != nil {
		return err
	}

	host := gui.Host()
	if p.FillColor != "" || p.HandleColor != "" {
		fill, handle := defaultFillColor, defaultHandleColor
		if p.FillColor != "" {
			fill = utils.HexToRGBA(p.FillColor)
		}
		if p.HandleColor != "" {
			handle = utils.HexToRGBA(p.HandleColor)
		}
		host.SetColors(fill, handle)
	}
	if p.Debug {
		WithLogger(log.New(os.Stderr, utils.DecorateText("clippy: ", utils.StatusMessage), 0))(host.Clipper())
	}
	host.OnComplete(func(path string) {
		// The handle set is frozen once the session completed.
		p.save(op, img, host.Clipper().Handles(), path)
	})

	err = gui.Run()
	p.wg.Wait()

	return err
}

// save exports a completed session without blocking the GUI event loop.
// The handle set is an immutable snapshot, so it can be handed over to another goroutine.
func (p *Processor) save(op *Ops, img image.Image, handles HandleSet, path string) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.mu.Lock()
		defer p.mu.Unlock()

		p.Spinner.SetMessage(fmt.Sprintf("%s %s",
			utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
			utils.DecorateText("⇢ saving the clip path...", utils.DefaultMessage),
		))
		p.Spinner.StopMsg = ""
		p.Spinner.Start()

		if err := p.complete(op, img, handles, path); err != nil {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
				utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("could not save the clip path: %v ✘", err), utils.ErrorMessage),
			)
			p.Spinner.Stop()
			return
		}

		var saved []string
		if op.Dst != op.PipeName && op.Dst != "" {
			saved = append(saved, filepath.Base(op.Dst))
		}
		if p.MaskPath != "" {
			saved = append(saved, filepath.Base(p.MaskPath))
		}
		if len(saved) > 0 {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("✂ CLIPPY", utils.StatusMessage),
				utils.DecorateText("⇢ saved:", utils.DefaultMessage),
				utils.DecorateText(strings.Join(saved, ", ")+" ✔", utils.SuccessMessage),
			)
		}
		p.Spinner.Stop()
	}()
}

// complete writes the finalized polygon and, when requested, the clipped silhouette.
func (p *Processor) complete(op *Ops, img image.Image, handles HandleSet, path string) error {
	if err := op.writeResult(p.Format, path, handles); err != nil {
		return err
	}
	if p.MaskPath == "" {
		return nil
	}

	var backdrop color.Color
	if p.Backdrop != "" {
		backdrop = utils.HexToRGBA(p.Backdrop)
	}
	f, err := os.Create(p.MaskPath)
	if err != nil {
		return fmt.Errorf("unable to create the silhouette file: %w", err)
	}
	defer f.Close()

	if err := encodeImg(f, Silhouette(img, handles, backdrop)); err != nil {
		return fmt.Errorf("unable to encode the silhouette: %w", err)
	}
	return nil
}

// writeResult writes the polygon to the destination file or to stdout.
// Files are truncated on every completed session.
func (op *Ops) writeResult(f Format, path string, handles HandleSet) error {
	if op.Dst == op.PipeName || op.Dst == "" {
		return WriteResult(os.Stdout, f, path, handles)
	}
	dst, err := os.OpenFile(op.Dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer dst.Close()

	return WriteResult(dst, f, path, handles)
}

// loadImage reads the source image, be it an URL, a pipe name or a regular file.
func (op *Ops) loadImage() (*image.NRGBA, error) {
	src, cleanup, err := op.openSource()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return DecodeImage(src)
}

// openSource converts the source path to a readable stream.
// The returned function releases the resources held by the stream.
func (op *Ops) openSource() (io.Reader, func(), error) {
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(op.Src) {
		f, err := utils.DownloadImage(op.Src)
		if err != nil {
			if f != nil {
				f.Close()
				os.Remove(f.Name())
			}
			return nil, nil, fmt.Errorf("failed to load the source image: %w", err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			os.Remove(f.Name())
			return nil, nil, err
		}
		return f, func() {
			f.Close()
			os.Remove(f.Name())
		}, nil
	}

	// Check if the source is a pipe name or a regular file.
	if op.Src == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, func() {}, nil
	}

	ext := strings.ToLower(filepath.Ext(op.Src))
	if !utils.Contains(SupportedExtensions, ext) {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, ext)
	}
	f, err := os.Open(op.Src)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}, nil
}
