package tabular

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/internal"
	"goeda/internal/errors"
	"goeda/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(&strings.Builder{}, internal.LogLevelError)
}

func TestRead_SamplePassengers(t *testing.T) {
	path := testkit.WriteSamplePassengers(t)

	table, err := NewReader(path, quietLogger()).Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testkit.SampleRows, table.Rows())
	assert.Equal(t, dataset.RequiredColumns, table.Names())

	kinds := map[string]dataset.Kind{}
	for _, c := range table.Columns() {
		kinds[c.Name] = c.Kind
	}
	assert.Equal(t, dataset.KindInt, kinds[dataset.ColSurvived])
	assert.Equal(t, dataset.KindInt, kinds[dataset.ColPclass])
	assert.Equal(t, dataset.KindFloat, kinds[dataset.ColAge])
	assert.Equal(t, dataset.KindFloat, kinds[dataset.ColFare])
	assert.Equal(t, dataset.KindString, kinds[dataset.ColSex])
	assert.Equal(t, dataset.KindString, kinds[dataset.ColCabin])

	name, err := table.Column(dataset.ColName)
	require.NoError(t, err)
	assert.Equal(t, "Braund, Mr. Owen Harris", name.Str[0])

	age, err := table.Column(dataset.ColAge)
	require.NoError(t, err)
	assert.Equal(t, testkit.SampleMissingAge, age.MissingCount())
}

func TestRead_ByteOrderMarkOnHeader(t *testing.T) {
	path := testkit.WriteFile(t, "train.csv", "\ufeff"+testkit.SamplePassengerCSV())

	table, err := NewReader(path, quietLogger()).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataset.RequiredColumns, table.Names())
	assert.True(t, table.Has(dataset.ColPassengerID))
}

func TestRead_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "train.csv"), quietLogger()).Read(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRead_RaggedRowIsParseError(t *testing.T) {
	contents := testkit.PassengerHeader + "\n1,0,3,Name,male,22\n"
	path := testkit.WriteFile(t, "train.csv", contents)

	_, err := NewReader(path, quietLogger()).Read(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestRead_MissingColumnIsSchemaError(t *testing.T) {
	contents := "PassengerId,Survived\n1,0\n"
	path := testkit.WriteFile(t, "train.csv", contents)

	_, err := NewReader(path, quietLogger()).Read(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
}

func TestRead_NonNumericAgeIsSchemaError(t *testing.T) {
	contents := testkit.PassengerHeader + "\n" +
		`1,0,3,"Braund, Mr. Owen Harris",male,twenty,1,0,A/5 21171,7.25,,S` + "\n"
	path := testkit.WriteFile(t, "train.csv", contents)

	_, err := NewReader(path, quietLogger()).Read(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrColumnType)
}

func TestRead_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.xlsx")

	f := excelize.NewFile()
	header := strings.Split(testkit.PassengerHeader, ",")
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerRow))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, 0, 3, "Braund, Mr. Owen Harris", "male", 22, 1, 0, "A/5 21171", 7.25, "", "S"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, 1, 1, "Cumings, Mrs. John Bradley", "female", 38, 1, 0, "PC 17599", 71.2833, "C85"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := NewReader(path, quietLogger()).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Rows())

	embarked, err := table.Column(dataset.ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, embarked.Absent)
}

func TestRead_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(testkit.WriteSamplePassengers(t), quietLogger()).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
