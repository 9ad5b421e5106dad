package stockPipelineService

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"jnv-po/internal/cronjob"
	"jnv-po/internal/db"
	"jnv-po/internal/models"
	"jnv-po/internal/services/sftpService"
	"jnv-po/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const stockFilePrefix = "STOCK_"

// Storage types and special-stock indicators excluded from the usable
// snapshot quantity.
var ignoreSs = []string{`S`}
var ignoreTypes = []string{`901`, `902`, `911`, `914`, `916`, `921`, `922`, `998`, `999`, `REW`}

func init() {
	godotenv.Load()

	cronjob.RegisterJob("stock-pipeline-daily", RunStockPipeline, `0 5 * * *`)
}

func RunStockPipeline() {
	today := time.Now().Format("2006-01-02")

	if err := ProcessStockPipeline(today); err != nil {
		log.Printf("[stock-pipeline] failed: %v", err)
	}
}

func ManualStockPipeline(c *gin.Context, jsonPayload string) (interface{}, error) {
	req := StockPipelineRequest{}
	if jsonPayload != "" {
		json.Unmarshal([]byte(jsonPayload), &req)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := utils.ParseDateOnly(date); err != nil {
		return nil, err
	}

	if err := ProcessStockPipeline(date); err != nil {
		return nil, err
	}

	return models.BaseResponse{
		Success: true,
		Message: fmt.Sprintf("stock snapshot loaded for %s", date),
	}, nil
}

// ProcessStockPipeline pulls the newest stock extract from the SAP drop
// directory, parses it and rewrites the date-named snapshot table the PO
// pipeline prefers for that date.
func ProcessStockPipeline(date string) error {
	downloadDir := os.Getenv("stock_file_path")
	if downloadDir == "" {
		downloadDir = "stock_files"
	}
	if err := os.MkdirAll(downloadDir, 0755); err != nil {
		return fmt.Errorf("unable to create download directory: %w", err)
	}

	if err := fetchLatestStockFile(downloadDir); err != nil {
		return err
	}

	localFile, err := FindLatestFileWithPrefix(downloadDir, stockFilePrefix)
	if err != nil {
		return err
	}
	log.Printf("[stock-pipeline] using %s", localFile)

	rows, err := ReadTabFile(localFile)
	if err != nil {
		return err
	}

	stockRows, err := BuildStockRows(rows)
	if err != nil {
		return err
	}
	log.Printf("[stock-pipeline] %d extract rows, %d plant/material quantities", len(rows), len(stockRows))

	return LoadStockTable(date, stockRows)
}

func fetchLatestStockFile(downloadDir string) error {
	remoteDir := os.Getenv("stock_remote_path")
	if remoteDir == "" {
		return fmt.Errorf("not found stock_remote_path")
	}

	client, sshConn, err := sftpService.NewClient()
	if err != nil {
		return err
	}
	defer client.Close()
	defer sshConn.Close()

	files, err := client.ReadDir(remoteDir)
	if err != nil {
		return err
	}

	latestFile, err := utils.GetLatestFile(files, stockFilePrefix)
	if err != nil {
		return err
	}

	remoteFile, err := client.Open(remoteDir + "/" + latestFile.Name())
	if err != nil {
		return err
	}
	defer remoteFile.Close()

	dstFile, err := os.Create(filepath.Join(downloadDir, latestFile.Name()))
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := remoteFile.WriteTo(dstFile); err != nil {
		return err
	}

	return nil
}

// BuildStockRows aggregates usable stock per plant/material. SAP prints
// negative quantities with a trailing minus.
func BuildStockRows(rows []map[string]interface{}) ([]StockRow, error) {
	order := []string{}
	totals := map[string]*StockRow{}

	for _, row := range rows {
		s := utils.GetCodeValue(row, "S")
		typ := utils.GetCodeValue(row, "Typ")
		if contains(ignoreSs, s) || contains(ignoreTypes, typ) {
			continue
		}

		plant := utils.GetCodeValue(row, "Plant")
		materialCode := utils.GetCodeValue(row, "Material")
		if materialCode == "" {
			continue
		}

		qty, err := parseSapQty(utils.GetCodeValue(row, "Avail.stock"))
		if err != nil {
			return nil, err
		}

		key := plant + "|" + materialCode
		if _, exists := totals[key]; !exists {
			order = append(order, key)
			totals[key] = &StockRow{Plant: plant, MaterialCode: materialCode}
		}
		totals[key].Qty += qty
	}

	stockRows := []StockRow{}
	for _, key := range order {
		stockRows = append(stockRows, *totals[key])
	}

	return stockRows, nil
}

func parseSapQty(qtyStr string) (float64, error) {
	qtyStr = strings.ReplaceAll(qtyStr, ",", "")

	if strings.HasSuffix(qtyStr, "-") {
		qtyStr = "-" + strings.TrimSuffix(qtyStr, "-")
	}

	qty, err := strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing stock quantity %q: %w", qtyStr, err)
	}

	return qty, nil
}

// LoadStockTable rewrites stock_check_<mm>_<dd> for the given date. The table
// is cloned from the generic snapshot table on first use.
func LoadStockTable(date string, stockRows []StockRow) error {
	tableName := fmt.Sprintf("stock_check_%s", utils.MonthDaySuffix(date))

	gormDb, err := db.ConnectGORM("manufacturing")
	if err != nil {
		return err
	}
	defer db.CloseGORM(gormDb)

	tx := gormDb.Begin()

	if err := tx.Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` LIKE stock_check", tableName)).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Exec(fmt.Sprintf("DELETE FROM `%s`", tableName)).Error; err != nil {
		tx.Rollback()
		return err
	}

	insertFunc := func(tx *gorm.DB, batch []StockRow) error {
		records := []map[string]interface{}{}
		for _, row := range batch {
			records = append(records, map[string]interface{}{
				"플랜트":  row.Plant,
				"자재번호": row.MaterialCode,
				"재고수량": row.Qty,
			})
		}

		return tx.Table(tableName).Create(records).Error
	}

	batch := []StockRow{}
	for index, row := range stockRows {
		batch = append(batch, row)

		if len(batch) >= 500 || index == len(stockRows)-1 {
			if err := insertFunc(tx, batch); err != nil {
				tx.Rollback()
				return err
			}
			batch = []StockRow{}
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	log.Printf("[stock-pipeline] %s rewritten with %d rows", tableName, len(stockRows))

	return nil
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
