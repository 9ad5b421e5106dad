package masterService

import (
	"errors"
	"fmt"
	"log"

	"jnv-po/internal/db"
	"jnv-po/internal/models"
	uploadlog "jnv-po/internal/services/upload_log"
	"jnv-po/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadStandardInfo replaces the item-master ordering policy table from an
// uploaded Excel sheet. Pack size, minimum stock and vendor come straight
// from the sheet; quantity columns are coerced with a 0 default so a bad cell
// uploads as 0 instead of failing the whole file.
func UploadStandardInfo(c *gin.Context) (interface{}, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, errors.New("incorrect content type, expected multipart/form-data")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("failed to get multipart form: " + err.Error())
	}

	if len(form.File) == 0 {
		return nil, errors.New("no file found in the request")
	}

	sqlxDb, err := db.ConnectSqlx(`manufacturing`)
	if err != nil {
		return nil, err
	}
	defer sqlxDb.Close()

	gormDb, err := db.ConnectGORM(`manufacturing`)
	if err != nil {
		return nil, err
	}
	defer db.CloseGORM(gormDb)

	records := []map[string]interface{}{}
	var uploadFileName string

	for fieldName := range form.File {
		data, fileName, err := utils.ReadExcelFile(c, fieldName, ``)
		if err != nil {
			return nil, err
		}

		uploadFileName = fileName

		for _, row := range data {
			materialCode := utils.GetCodeValue(row, "자재번호")
			if materialCode == "" {
				continue
			}

			records = append(records, map[string]interface{}{
				"플랜트":  utils.GetCodeValue(row, "플랜트"),
				"자재번호": materialCode,
				"적입수량": utils.GetDefaultValue(row, "적입수량", "float64").(float64),
				"최소재고": utils.GetDefaultValue(row, "최소재고", "float64").(float64),
				"구매처":  utils.GetCodeValue(row, "구매처"),
			})
		}
	}

	err = replaceStandardInfo(gormDb, records)

	uploadMessage := "success"
	if err != nil {
		uploadMessage = err.Error()
	}

	logErr := uploadlog.AddUploadLog(sqlxDb, "po-standard-info", uploadFileName, len(records), err == nil, uploadMessage, 0)
	if logErr != nil {
		log.Printf("[master-service] failed to write upload log: %v", logErr)
	}

	if err != nil {
		return nil, err
	}

	return models.BaseResponse{
		Success: true,
		Message: fmt.Sprintf("%s: %d standard_info rows uploaded", uploadFileName, len(records)),
	}, nil
}

func replaceStandardInfo(gormDb *gorm.DB, records []map[string]interface{}) error {
	tx := gormDb.Begin()

	if err := tx.Exec("DELETE FROM standard_info").Error; err != nil {
		tx.Rollback()
		return err
	}

	batch := []map[string]interface{}{}
	for index, record := range records {
		batch = append(batch, record)

		if len(batch) >= 500 || index == len(records)-1 {
			if err := tx.Table("standard_info").Create(batch).Error; err != nil {
				tx.Rollback()
				return err
			}
			batch = []map[string]interface{}{}
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}
