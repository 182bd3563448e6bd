package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lbseries/internal/report"
)

var rows = []report.CoverageRow{
	{
		Location:        "Pune",
		LocationName:    "Pune Branch",
		Code:            "PUN1",
		LinkedAddress:   "Pune Office",
		LinkedWarehouse: "Pune Group",
		WarehouseGroup:  true,
		ValidWarehouses: []string{"Pune Stores", "Pune Rejects"},
		PlaceOfSupply:   "27-Maharashtra",
	},
	{
		Location: "Ghost",
		Problems: []string{"missing location code", "missing linked address"},
	},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want report.Format
		ok   bool
	}{
		{"", report.FormatCSV, true},
		{"csv", report.FormatCSV, true},
		{" XLSX ", report.FormatXLSX, true},
		{"pdf", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := report.ParseFormat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "location_coverage_2025-04-01.csv", report.BuildFilename("location_coverage", report.FormatCSV, now))
	assert.Equal(t, "Pune_Stores_2025-04-01.xlsx", report.BuildFilename("Pune // Stores", report.FormatXLSX, now))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b-c", report.SanitizeFilename("  a!!b-c  "))
	assert.Len(t, report.SanitizeFilename(string(bytes.Repeat([]byte("x"), 150))), 100)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, rows))

	b := buf.Bytes()
	require.True(t, bytes.HasPrefix(b, report.BOM))

	records, err := csv.NewReader(bytes.NewReader(b[len(report.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Location", records[0][0])
	assert.Equal(t, []string{
		"Pune", "Pune Branch", "PUN1", "Pune Office", "Pune Group", "Yes", "2",
		"Pune Stores, Pune Rejects", "27-Maharashtra", "",
	}, records[1])
	assert.Equal(t, "No", records[2][5])
	assert.Equal(t, "missing location code; missing linked address", records[2][9])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Location Code", got[0][2])
	assert.Equal(t, "PUN1", got[1][2])
	assert.Equal(t, "2", got[1][6])
	assert.Equal(t, "27-Maharashtra", got[1][8])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, report.Format("pdf"), rows)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
