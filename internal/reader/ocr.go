package reader

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// ocrDPI matches the original pipeline's render resolution.
const ocrDPI = "300"

// OCR recognizes scanned PDFs by shelling out to poppler's pdftoppm for
// rendering and tesseract for recognition, the same binaries the pdf2image
// and pytesseract wrappers drive.
type OCR struct {
	// Languages is the tesseract language spec, "dan+eng" by default.
	Languages string
}

// RecognizePages implements parser.OCREngine. Pages whose recognition fails
// come back blank; a failure to render anything at all is ocr_failed.
func (o OCR) RecognizePages(path string) ([]string, error) {
	langs := o.Languages
	if langs == "" {
		langs = "dan+eng"
	}

	tmpDir, err := os.MkdirTemp("", "rentroll_ocr_")
	if err != nil {
		return nil, model.NewParseError(model.ErrOCRFailed, err.Error())
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	render := exec.Command("pdftoppm", "-png", "-r", ocrDPI, path, prefix)
	if out, err := render.CombinedOutput(); err != nil {
		return nil, model.NewParseError(model.ErrOCRFailed,
			fmt.Sprintf("page rendering failed: %v: %s", err, out))
	}

	images, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(images) == 0 {
		return nil, model.NewParseError(model.ErrOCRFailed, "no page images rendered")
	}
	// pdftoppm zero-pads page numbers within one run, so lexical order is
	// page order.
	sort.Strings(images)

	texts := make([]string, 0, len(images))
	for _, img := range images {
		recognize := exec.Command("tesseract", img, "stdout", "-l", langs)
		out, err := recognize.Output()
		if err != nil {
			// Failed pages stay in the sequence as blanks; whether the file
			// as a whole is usable is the pipeline's call.
			texts = append(texts, "")
			continue
		}
		texts = append(texts, string(out))
	}
	return texts, nil
}
