package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

// DefaultPDFFileName is the name offered for PDF downloads.
const DefaultPDFFileName = "image.pdf"

// WritePDF places a PNG snapshot on a single page of the same size, one
// point per pixel.
func WritePDF(w io.Writer, pngData []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	wd, ht := float64(cfg.Width), float64(cfg.Height)
	orientation := "P"
	if wd > ht {
		orientation = "L"
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("snapshot", opts, bytes.NewReader(pngData))
	p.ImageOptions("snapshot", 0, 0, wd, ht, false, opts, 0, "")
	if err := p.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return p.Output(w)
}

// ExportPDF renders the surface snapshot into a PDF and offers it to the
// downloader.
func (t Trigger) ExportPDF() error {
	data, err := t.snapshot()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, data); err != nil {
		return err
	}
	name := t.PDFFileName
	if name == "" {
		name = DefaultPDFFileName
	}
	if err := t.Downloader.Download(name, buf.Bytes()); err != nil {
		return fmt.Errorf("download %s: %w", name, err)
	}
	log.Printf("[EXPORT] Offered %s (%d bytes)", name, buf.Len())
	return nil
}
