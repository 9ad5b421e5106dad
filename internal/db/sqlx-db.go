package db

import (
	"context"
	"fmt"
	"os"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func ConnectSqlx(databaseName string) (*sqlx.DB, error) {

	dabaseUrl := os.Getenv(fmt.Sprintf("database_sqlx_url_%s", databaseName))
	if dabaseUrl == `` {
		return nil, fmt.Errorf("not found database_sqlx_url_%s", databaseName)
	}

	db, err := sqlx.Connect("mysql", dabaseUrl)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	return db, nil
}

// MySQL type names whose []byte values must stay strings.
var textColumnTypes = map[string]bool{
	"CHAR":       true,
	"VARCHAR":    true,
	"TINYTEXT":   true,
	"TEXT":       true,
	"MEDIUMTEXT": true,
	"LONGTEXT":   true,
	"ENUM":       true,
	"SET":        true,
	"JSON":       true,
}

func ExecuteQuery(db *sqlx.DB, query string) ([]map[string]interface{}, error) {
	var results []map[string]interface{}

	rows, err := db.QueryxContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %v", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names: %v", err)
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to get column types: %v", err)
	}

	textColumn := make([]bool, len(columns))
	for i, columnType := range columnTypes {
		textColumn[i] = textColumnTypes[columnType.DatabaseTypeName()]
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			row[col] = CoerceColumnValue(values[i], textColumn[i])
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during iteration: %v", err)
	}

	return results, nil
}

// CoerceColumnValue converts one scanned column value into the map form the
// services consume. The driver returns text and DECIMAL columns alike as
// []byte: a value from a text column keeps its exact stored string — a BOM
// level marker ".0" or a zero-padded code must never come back as a number —
// while any other numeric-looking []byte becomes float64. UUIDs stored in
// CHAR columns are normalized to their canonical form.
func CoerceColumnValue(val interface{}, textColumn bool) interface{} {
	switch val := val.(type) {
	case []byte:
		strVal := string(val)
		if textColumn {
			if parsedUUID, err := uuid.Parse(strVal); err == nil {
				return parsedUUID.String()
			}
			return strVal
		}
		if f, err := strconv.ParseFloat(strVal, 64); err == nil {
			return f
		}
		return strVal
	case string:
		if parsedUUID, err := uuid.Parse(val); err == nil {
			return parsedUUID.String()
		}
		return val
	case int32:
		return int(val)
	default:
		return val
	}
}
