package poService

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	pdfService "jnv-po/internal/services/pdf-service"
	"jnv-po/internal/utils"

	"github.com/gin-gonic/gin"
)

// GeneratePo runs the pipeline for the requested date, renders one PDF per
// vendor document and returns the file references.
func GeneratePo(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req GeneratePoRequest

	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
	}

	if _, err := utils.ParseDateOnly(req.Date); err != nil {
		return nil, err
	}

	docs, reason, err := GeneratePoDocs(req.Date)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return GeneratePoResponse{
			Ok:       false,
			Date:     req.Date,
			Count:    0,
			PdfInfos: []PdfInfo{},
			Message:  "no purchase orders for this date: " + reason,
		}, nil
	}

	pdfInfos, err := renderDocs(docs)
	if err != nil {
		return nil, err
	}

	return GeneratePoResponse{
		Ok:       true,
		Date:     req.Date,
		Count:    len(pdfInfos),
		PdfInfos: pdfInfos,
		Message:  fmt.Sprintf("%d purchase orders generated", len(pdfInfos)),
	}, nil
}

func renderDocs(docs []PoDocument) ([]PdfInfo, error) {
	renderData := []pdfService.PoDocumentData{}

	for _, doc := range docs {
		data := pdfService.PoDocumentData{
			PoNo:       doc.Header.PoNo,
			PoDate:     doc.Header.PoDate,
			Plant:      doc.Header.Plant,
			VendorCode: doc.Header.VendorCode,
			VendorName: doc.Header.VendorName,
			BuyerName:  doc.Header.BuyerName,
		}

		for _, item := range doc.Items {
			data.Items = append(data.Items, pdfService.PoItemData{
				ItemName:     item.ItemName,
				MaterialCode: item.MaterialCode,
				OrderQty:     item.OrderQty,
				Unit:         item.Unit,
				UnitPrice:    item.UnitPrice,
				Amount:       item.Amount,
			})
		}

		renderData = append(renderData, data)
	}

	rendered, err := pdfService.SavePoPdf(renderData)
	if err != nil {
		return nil, err
	}

	infos := []PdfInfo{}
	for _, info := range rendered {
		infos = append(infos, PdfInfo{
			VendorName: info.VendorName,
			FileName:   info.FileName,
			Path:       info.Path,
		})
	}

	return infos, nil
}

// DownloadPo serves one rendered purchase order PDF. The file name is reduced
// to its base name so the query parameter cannot escape the output directory.
func DownloadPo(c *gin.Context) {
	fileName := c.Query("file_name")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_name is required"})
		return
	}

	safeName := filepath.Base(fileName)
	fullPath := filepath.Join(pdfService.OutputDir(), safeName)

	if _, err := os.Stat(fullPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.FileAttachment(fullPath, safeName)
}
