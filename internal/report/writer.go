package report

import (
	"fmt"
	"image/png"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/riskibarqy/team-report/internal/platform/logging"
)

const fontFamily = "Arial"

// Writer renders a composed Document to a PDF file.
type Writer struct {
	logger *logging.Logger
}

func NewWriter(logger *logging.Logger) *Writer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{logger: logger}
}

func (w *Writer) Write(doc Document, path string) error {
	if path == "" {
		return fmt.Errorf("report path is required")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAuthor(doc.Author, true)
	pdf.SetTitle(doc.Title, true)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch el.Kind {
			case KindImage:
				if err := checkPNG(el.ImagePath); err != nil {
					w.logger.Warn("report image unusable, drawing placeholder", "page", page.Name, "path", el.ImagePath, "error", err)
					placeholder := heading("Image unavailable", el.X, el.Y, 12)
					drawText(pdf, translate, placeholder)
					continue
				}
				pdf.ImageOptions(el.ImagePath, el.X, el.Y, el.W, 0, false, fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
			default:
				drawText(pdf, translate, el)
			}
		}
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("render page %s: %w", page.Name, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func drawText(pdf *fpdf.Fpdf, translate func(string) string, el Element) {
	border := ""
	if el.Border {
		border = "1"
	}
	align := ""
	if el.Center {
		align = "C"
	}

	pdf.SetFont(fontFamily, "B", el.FontSize)
	pdf.SetTextColor(el.Color.R, el.Color.G, el.Color.B)
	pdf.SetXY(el.X, el.Y)
	if el.MultiLine {
		pdf.MultiCell(el.W, el.H, translate(el.Text), border, align, false)
		return
	}
	pdf.CellFormat(el.W, el.H, translate(el.Text), border, 0, align, false, 0, "")
}

// checkPNG fails for missing files and for anything fpdf's PNG parser would
// reject, such as an HTML error page saved under a .png name.
func checkPNG(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := png.DecodeConfig(f); err != nil {
		return fmt.Errorf("decode png header: %w", err)
	}
	return nil
}
