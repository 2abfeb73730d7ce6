package repository

import (
	"errors"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

var errUnexpectedResult = errors.New("unexpected result format")

// extractQueryResults flattens the wrapped {status, result} rows returned
// by database.Query into a single slice of row data.
func extractQueryResults(results []interface{}) []interface{} {
	rows := make([]interface{}, 0)
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); !ok || status != "OK" {
			continue
		}
		if resultData, ok := resp["result"].([]interface{}); ok {
			rows = append(rows, resultData...)
		}
	}
	return rows
}

// extractCreatedID pulls the record id out of a CREATE statement's result.
func extractCreatedID(results []interface{}) (string, error) {
	rows := extractQueryResults(results)
	if len(rows) == 0 {
		return "", errUnexpectedResult
	}
	row, ok := rows[0].(map[string]interface{})
	if !ok {
		return "", errUnexpectedResult
	}
	id := convertRecordID(row["id"])
	if id == "" {
		return "", errUnexpectedResult
	}
	return id, nil
}

// extractCount extracts count from a SurrealDB count query result
func extractCount(result interface{}) int {
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok && len(resultData) > 0 {
				if data, ok := resultData[0].(map[string]interface{}); ok {
					return extractCountValue(data["count"])
				}
			}
		}
		// Direct access
		return extractCountValue(resp["count"])
	}
	return 0
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// convertRecordID converts a SurrealDB record id to its string form
func convertRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if idVal, ok := v["id"]; ok {
				return fmt.Sprintf("%s:%v", tb, idVal)
			}
		}
		if tb, ok := v["Table"].(string); ok {
			if idVal, ok := v["ID"]; ok {
				return fmt.Sprintf("%s:%v", tb, idVal)
			}
		}
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", id)
}
