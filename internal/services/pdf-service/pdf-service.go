package pdfService

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PoDocumentData is the rendering-side view of one purchase order. The
// pipeline converts its documents into this shape before handing them over.
type PoDocumentData struct {
	PoNo       int64
	PoDate     string
	Plant      string
	VendorCode string
	VendorName string
	BuyerName  string
	Items      []PoItemData
}

type PoItemData struct {
	ItemName     string
	MaterialCode string
	OrderQty     int64
	Unit         string
	UnitPrice    float64
	Amount       float64
}

// PdfInfo is the per-document reference returned to the caller.
type PdfInfo struct {
	VendorName string `json:"vendor_name"`
	FileName   string `json:"file_name"`
	Path       string `json:"path"`
}

func OutputDir() string {
	dir := os.Getenv("po_output_path")
	if dir == "" {
		dir = "po_gen"
	}

	return dir
}

// SavePoPdf renders each document to a PDF under the output directory and
// returns one file reference per document.
func SavePoPdf(docs []PoDocumentData) ([]PdfInfo, error) {
	outputDir := OutputDir()
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	infos := []PdfInfo{}

	for _, doc := range docs {
		fileName := fmt.Sprintf("PO_%s_%s.pdf", doc.PoDate, sanitizeFileName(doc.VendorName))
		fullPath := filepath.Join(outputDir, fileName)

		if err := renderPoPdf(doc, fullPath); err != nil {
			return nil, fmt.Errorf("unable to render %s: %w", fileName, err)
		}

		infos = append(infos, PdfInfo{
			VendorName: doc.VendorName,
			FileName:   fileName,
			Path:       fullPath,
		})
	}

	return infos, nil
}

func renderPoPdf(doc PoDocumentData, fullPath string) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Purchase Order", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New(fmt.Sprintf("P/O No: %d", doc.PoNo), props.Text{Top: 0}),
			text.New("Order date: "+doc.PoDate, props.Text{Top: 5}),
			text.New("Plant: "+doc.Plant, props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Vendor: "+doc.VendorName, props.Text{Top: 0}),
			text.New("Vendor code: "+doc.VendorCode, props.Text{Top: 5}),
			text.New("Buyer: "+doc.BuyerName, props.Text{Top: 10}),
		),
	)

	m.AddRow(8,
		text.NewCol(4, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Material", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Unit", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	total := 0.0
	for _, item := range doc.Items {
		total += item.Amount

		m.AddRow(7,
			text.NewCol(4, item.ItemName, props.Text{Size: 9}),
			text.NewCol(3, item.MaterialCode, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.OrderQty), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, item.Unit, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%.2f", item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, fmt.Sprintf("%.2f", item.Amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(9,
		col.New(9),
		text.NewCol(1, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, fmt.Sprintf("%.2f", total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	rendered, err := m.Generate()
	if err != nil {
		return err
	}

	return rendered.Save(fullPath)
}

func sanitizeFileName(name string) string {
	if name == "" {
		return "NO_VENDOR"
	}

	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_")

	return replacer.Replace(name)
}
