package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const truthCSV = `File Name,Aggrement Value,Aggrement Start Date,Aggrement End Date,Renewal Notice (Days),Party One,Party Two
a.docx,12000,01.04.2008,01.04.2009,30,John Mathew,Rita Fernandes
b.png,9500,05.01.2015,,60,Acme Estates,
`

func TestLoadGroundTruthCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.csv")
	require.NoError(t, os.WriteFile(path, []byte(truthCSV), 0o644))

	recs, err := LoadGroundTruth(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "a.docx", recs[0].FileName)
	assert.Equal(t, "12000", recs[0].Value)
	assert.Equal(t, "01.04.2008", recs[0].StartDate)
	assert.Equal(t, "30", recs[0].NoticeDays)
	assert.Equal(t, "Rita Fernandes", recs[0].PartyTwo)

	// blank cells stay empty
	assert.Empty(t, recs[1].EndDate)
	assert.Empty(t, recs[1].PartyTwo)
}

func TestLoadGroundTruthXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"File Name", "Aggrement Value", "Aggrement Start Date", "Aggrement End Date", "Renewal Notice (Days)", "Party One", "Party Two"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	row := []string{"a.docx", "12000", "01.04.2008", "01.04.2009", "30", "John Mathew", "Rita Fernandes"}
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.SaveAs(path))

	recs, err := LoadGroundTruth(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "12000", recs[0].Value)
	assert.Equal(t, "John Mathew", recs[0].PartyOne)
}

func TestLoadGroundTruthErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadGroundTruth(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Wrong,Headers\n1,2\n"), 0o644))
	_, err = LoadGroundTruth(bad)
	assert.ErrorContains(t, err, "File Name")

	unsupported := filepath.Join(dir, "truth.json")
	require.NoError(t, os.WriteFile(unsupported, []byte("{}"), 0o644))
	_, err = LoadGroundTruth(unsupported)
	assert.ErrorContains(t, err, "unsupported table format")
}
