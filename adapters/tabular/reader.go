package tabular

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"goeda/adapters/datareadiness/coercer"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/internal"
	"goeda/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader loads a delimited (.csv) or spreadsheet (.xlsx) file into a
// dataset.Table. The first row is the header.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	coercer  *coercer.TypeCoercer
	logger   *internal.Logger
}

// NewReader creates a reader; the file type follows the extension and
// anything that is not .xlsx is read as CSV.
func NewReader(filePath string, logger *internal.Logger) *Reader {
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = "xlsx"
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{
		filePath: filePath,
		fileType: fileType,
		coercer:  coercer.NewTypeCoercer(coercer.DefaultCoercionConfig()),
		logger:   logger,
	}
}

// Read loads the file and validates it against the passenger schema
func (r *Reader) Read(ctx context.Context) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.AppError{
				Code:    errors.CodeNotFound,
				Message: fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath),
				Cause:   err,
			}
		}
		return nil, errors.IOError("failed to stat input file", err)
	}

	start := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("read %d raw rows from %s in %s", len(rows), r.filePath, time.Since(start))

	table, err := r.buildTable(rows)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(table); err != nil {
		return nil, err
	}

	r.logger.Info("loaded %s (%d rows, %d columns)", r.filePath, table.Rows(), table.Cols())
	return table, nil
}

// readCSVRows reads every record. encoding/csv enforces that all records
// have the same field count as the header.
func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOError("failed to open CSV file", err)
	}
	defer file.Close()

	return parseCSV(file)
}

func parseCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	rows, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.ParseError("malformed CSV", err)
		}
		return nil, errors.IOError("failed to read CSV file", err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseError("CSV file has no header row", nil)
	}
	return rows, nil
}

// readExcelRows reads the first sheet of a workbook
func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IOError("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseError("sheet has no header row", nil)
	}

	// excelize drops trailing empty cells; pad back to header width.
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > width {
			return nil, errors.ParseError(fmt.Sprintf("row %d has %d cells, header has %d", i+1, len(rows[i]), width), nil)
		}
		for len(rows[i]) < width {
			rows[i] = append(rows[i], "")
		}
	}
	return rows, nil
}

// utf8BOM is stripped from the first header cell when present
const utf8BOM = "\ufeff"

// buildTable transposes raw rows into typed columns
func (r *Reader) buildTable(rows [][]string) (*dataset.Table, error) {
	header := rows[0]
	data := rows[1:]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	columns := make([]*dataset.Column, len(header))
	for j, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.ParseError(fmt.Sprintf("header column %d is empty", j+1), nil)
		}
		raw := make([]string, len(data))
		for i, row := range data {
			raw[i] = row[j]
		}
		columns[j] = r.coercer.CoerceColumn(name, raw)
	}

	table, err := dataset.NewTable(columns...)
	if err != nil {
		return nil, errors.ParseError("invalid header", err)
	}
	return table, nil
}

// ValidateSchema checks that every passenger column is present and that the
// numeric ones parsed as numbers.
func ValidateSchema(t *dataset.Table) error {
	var missing []string
	for _, name := range dataset.RequiredColumns {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &errors.AppError{
			Code:    errors.CodeSchemaError,
			Message: fmt.Sprintf("missing columns: %s", strings.Join(missing, ", ")),
			Cause:   core.ErrSchemaMismatch,
		}
	}

	for _, name := range dataset.NumericColumns {
		if _, err := t.NumericColumn(name); err != nil {
			return &errors.AppError{
				Code:    errors.CodeSchemaError,
				Message: "numeric column holds non-numeric values",
				Cause:   err,
			}
		}
	}
	return nil
}
