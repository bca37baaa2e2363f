package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/leasemetric/leasebench/internal/entity"
)

var sampleRecords = []entity.MetadataRecord{
	{
		FileName: "a.docx", Value: "12000", StartDate: "01.04.2008", EndDate: "01.04.2009",
		NoticeDays: "30", PartyOne: "John Mathew", PartyTwo: "Rita Fernandes",
	},
	{
		FileName: "b.png", Value: "9500", StartDate: "05.01.2015", EndDate: "",
		NoticeDays: "0", PartyOne: "Acme Estates", PartyTwo: "P. Sharma",
	},
}

func TestPredictionsCSV(t *testing.T) {
	data, err := NewService(nil).PredictionsCSV(sampleRecords)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"File Name", "Aggrement Value", "Aggrement Start Date", "Aggrement End Date",
		"Renewal Notice (Days)", "Party One", "Party Two",
	}, rows[0])
	assert.Equal(t, "a.docx", rows[1][0])
	assert.Equal(t, "12000", rows[1][1])
	assert.Equal(t, "P. Sharma", rows[2][6])
}

func TestPredictionsXLSX(t *testing.T) {
	data, err := NewService(nil).PredictionsXLSX(sampleRecords)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Predictions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Aggrement Value", rows[0][1])
	assert.Equal(t, "01.04.2008", rows[1][2])
}

func TestPredictionsCSVEmpty(t *testing.T) {
	data, err := NewService(nil).PredictionsCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
