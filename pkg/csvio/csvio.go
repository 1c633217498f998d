package csvio

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
)

// 自己定義常用的權限常量
const (
	// rw-r--r-- (擁有者讀寫，其他人唯讀) - 適用於大多數檔案
	FileModeReadOnly fs.FileMode = 0644

	// rwxr-xr-x (擁有者全開，其他人可讀可執行) - 適用於目錄
	FileModeDir fs.FileMode = 0755
)

// AppendRecord 將一列資料附加到 CSV 檔尾（只增不改）。
// 檔案不存在時先建立並寫入表頭，之後的附加不再重複表頭。
//
// 參數:
//
//	path: CSV 檔案路徑
//	headers: 表頭欄位（僅首次建檔寫入）
//	record: 要附加的資料列
func AppendRecord(path string, headers []string, record []string) error {
	_, statErr := os.Stat(path)
	fileExists := statErr == nil

	// O_APPEND 每次寫入時自動跳到檔案末尾
	// O_CREATE 檔案不存在時建立
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FileModeReadOnly)
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if !fileExists {
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("could not write headers to %s: %w", path, err)
		}
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("could not write record to %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

// WriteRecords 整檔覆寫：表頭加上全部資料列
func WriteRecords(path string, headers []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("could not write headers to %s: %w", path, err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("could not write records to %s: %w", path, err)
	}
	return writer.Error()
}

// ReadRecords 逐列讀取 CSV 並套用解析函式，回傳所有解析結果。
// parseFn 回傳 (nil, nil) 代表跳過該列（表頭或格式不符的資料列）。
func ReadRecords[T any](path string, parseFn func(record []string) (*T, error)) ([]*T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// 欄位數不固定的列交給 parseFn 決定去留
	reader.FieldsPerRecord = -1

	var result []*T
	rowIndex := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("error reading CSV at row %d: %w", rowIndex, err)
		}

		item, err := parseFn(record)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", rowIndex, err)
		}
		if item != nil {
			result = append(result, item)
		}
		rowIndex++
	}
	return result, nil
}
