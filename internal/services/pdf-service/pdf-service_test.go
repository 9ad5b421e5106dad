package pdfService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePoPdf(t *testing.T) {
	t.Setenv("po_output_path", t.TempDir())

	docs := []PoDocumentData{
		{
			PoNo:       4500000001,
			PoDate:     "2025-11-24",
			Plant:      "1021",
			VendorCode: "V1",
			VendorName: "Vendor One",
			BuyerName:  "(자동생성)",
			Items: []PoItemData{
				{ItemName: "component Y", MaterialCode: "Y", OrderQty: 100, Unit: "EA", UnitPrice: 5, Amount: 500},
			},
		},
	}

	infos, err := SavePoPdf(docs)

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Vendor One", infos[0].VendorName)
	assert.Equal(t, "PO_2025-11-24_Vendor_One.pdf", infos[0].FileName)
	assert.FileExists(t, infos[0].Path)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "A_B_C", sanitizeFileName("A/B C"))
	assert.Equal(t, "NO_VENDOR", sanitizeFileName(""))
}
