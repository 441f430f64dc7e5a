package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Girder/internal/analysis"
)

func TestLoad_CSV(t *testing.T) {
	csv := " Position (m) ,Load (kN)\n3.0,10.0\n5.5,2.25\n"

	tbl, err := Load(strings.NewReader(csv), "loads.csv")
	require.NoError(t, err)

	// Headers come back trimmed.
	assert.Equal(t, []string{"Position (m)", "Load (kN)"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"3.0", "10.0"}, tbl.Rows[0])
}

func TestLoad_CSV_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""), "loads.csv")
	require.Error(t, err)
}

func TestLoad_CSV_Garbage(t *testing.T) {
	_, err := Load(strings.NewReader("a,\"b\nbroken"), "loads.csv")
	require.Error(t, err)
}

func TestLoad_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Position (m)", "Load (kN)"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{3.0, 10.0}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := Load(buf, "loads.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"Position (m)", "Load (kN)"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)

	loads := tbl.Loads()
	require.Len(t, loads, 1)
	assert.Equal(t, analysis.Load{Position: 3, Magnitude: 10}, loads[0])
}

func TestLoad_NotASpreadsheet(t *testing.T) {
	_, err := Load(strings.NewReader("this is not a zip archive"), "loads.xlsx")
	require.Error(t, err)
}

func TestLoads_SkipsUnparsableRows(t *testing.T) {
	tbl := &Table{
		Headers: []string{ColPosition, ColLoad},
		Rows: [][]string{
			{"3.0", "10.0"},
			{"not a number", "1.0"},
			{"5.0"}, // short row
			{"", ""},
			{"4.0", " 7.5 "},
		},
	}

	loads := tbl.Loads()
	require.Len(t, loads, 2)
	assert.Equal(t, analysis.Load{Position: 3, Magnitude: 10}, loads[0])
	assert.Equal(t, analysis.Load{Position: 4, Magnitude: 7.5}, loads[1])
}

func TestSamples_RoundTrip(t *testing.T) {
	tbl := &Table{
		Headers: []string{ColX, ColShear, ColMoment},
		Rows: [][]string{
			{"0", "3", "0"},
			{"5", "-2", "10"},
			{"10", "-2", "0"},
		},
	}

	res := analysis.FromSamples(tbl.Samples())
	require.Len(t, res.Samples, 3)
	assert.Equal(t, analysis.Sample{X: 5, Shear: -2, Moment: 10}, res.Samples[1])
	assert.Zero(t, res.RA)
	assert.Zero(t, res.RB)
}
