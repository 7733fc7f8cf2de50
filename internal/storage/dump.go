package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ExportToTOML dumps every user table into a single TOML file, one array of
// row-maps per table. The dump doubles as an offline backup and as the
// payload for moving a profile between machines.
func (s *Storage) ExportToTOML(outputPath string) error {
	rows, err := s.DB.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%';`)
	if err != nil {
		return fmt.Errorf("querying sqlite_master: %w", err)
	}
	defer rows.Close()

	dump := make(map[string][]map[string]interface{})

	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return fmt.Errorf("scanning table name: %w", err)
		}

		tableRows, err := s.DB.Query(fmt.Sprintf("SELECT * FROM %s;", tableName))
		if err != nil {
			return fmt.Errorf("querying table %s: %w", tableName, err)
		}

		cols, err := tableRows.Columns()
		if err != nil {
			tableRows.Close()
			return fmt.Errorf("getting columns for table %s: %w", tableName, err)
		}

		var tableData []map[string]interface{}
		for tableRows.Next() {
			values := make([]interface{}, len(cols))
			valuePtrs := make([]interface{}, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := tableRows.Scan(valuePtrs...); err != nil {
				tableRows.Close()
				return fmt.Errorf("scanning row in table %s: %w", tableName, err)
			}

			rowMap := make(map[string]interface{})
			for i, col := range cols {
				val := values[i]
				if b, ok := val.([]byte); ok {
					rowMap[col] = string(b)
				} else {
					rowMap[col] = val
				}
			}
			tableData = append(tableData, rowMap)
		}
		tableRows.Close()

		dump[tableName] = tableData
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tables: %w", err)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}

// DefaultDumpPath is where the TOML dump lands when no path is given.
func DefaultDumpPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "fitlog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportFromTOML rebuilds the database from a dump file: every table in the
// dump is cleared and reloaded inside one transaction. The caller confirms
// with the user before getting here, this replaces matching tables wholesale.
func (s *Storage) ImportFromTOML(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump map[string][]map[string]interface{}
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec("PRAGMA foreign_keys = OFF;"); err != nil {
		tx.Rollback()
		return fmt.Errorf("disabling foreign keys: %w", err)
	}

	for table, rows := range dump {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing table %s: %w", table, err)
		}

		for _, row := range rows {
			var columns []string
			var placeholders []string
			var values []interface{}
			for col, val := range row {
				columns = append(columns, col)
				placeholders = append(placeholders, "?")
				values = append(values, val)
			}
			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
				table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.Exec(query, values...); err != nil {
				tx.Rollback()
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if _, err := tx.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		tx.Rollback()
		return fmt.Errorf("re-enabling foreign keys: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
