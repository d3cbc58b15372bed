package sheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tabletalk/tabletalk/internal/sheet"
)

func xlsxBytes(t *testing.T, sheets ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, name := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			continue
		}
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestSniffCSV(t *testing.T) {
	info, err := sheet.Sniff("patients.csv", []byte("age,sex\n40,M\n"))
	require.NoError(t, err)
	assert.Equal(t, "csv", info.Kind)
}

func TestSniffEmptyCSV(t *testing.T) {
	_, err := sheet.Sniff("empty.csv", nil)
	assert.Error(t, err)
}

func TestSniffXLSX(t *testing.T) {
	data := xlsxBytes(t, "Patients", "Visits")
	info, err := sheet.Sniff("clinic.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", info.Kind)
	assert.Equal(t, []string{"Patients", "Visits"}, info.Sheets)
}

func TestSniffCorruptXLSX(t *testing.T) {
	_, err := sheet.Sniff("broken.xlsx", []byte("this is not a zip archive"))
	assert.Error(t, err)
}

func TestSniffLegacyXLSPassesOnExtension(t *testing.T) {
	info, err := sheet.Sniff("old.xls", []byte{0xd0, 0xcf, 0x11, 0xe0})
	require.NoError(t, err)
	assert.Equal(t, "xls", info.Kind)
	assert.Nil(t, info.Sheets)
}

func TestSniffUnsupportedExtension(t *testing.T) {
	_, err := sheet.Sniff("report.pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, sheet.ErrUnsupportedType)
}

func TestSniffExtensionCaseInsensitive(t *testing.T) {
	info, err := sheet.Sniff("DATA.CSV", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "csv", info.Kind)
}
