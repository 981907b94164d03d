package luckydraw

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"github.com/xuri/excelize/v2"
)

// memSource is an in-memory RowSource. Row 0 of each sheet is the header row.
type memSource struct {
	order  []string
	sheets map[string][][]string
}

func newMemSource() *memSource {
	return &memSource{sheets: make(map[string][][]string)}
}

func (m *memSource) add(name string, rows ...[]string) *memSource {
	m.order = append(m.order, name)
	m.sheets[name] = rows
	return m
}

func (m *memSource) SheetList() []string {
	return m.order
}

func (m *memSource) Headers(sheet string) ([]string, error) {
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (m *memSource) Scan(sheet string, fn func(row models.Row) error) error {
	rows, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("sheet %s does not exist", sheet)
	}
	for i := 1; i < len(rows); i++ {
		cells := make([]models.Cell, len(rows[i]))
		for j, v := range rows[i] {
			cells[j] = models.Cell{Raw: v}
		}
		if err := fn(models.Row{R: i + 1, Cells: cells}); err != nil {
			return err
		}
	}
	return nil
}

// sheetData describes one sheet of a generated workbook.
type sheetData struct {
	name string
	rows [][]any
}

// saveWorkbook writes the sheets to a temporary .xlsx file and returns its path.
func saveWorkbook(t *testing.T, sheets ...sheetData) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "draw.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var (
	ticketHeader   = []string{"Ticket No.", "Agent Name", "Group No.", "Lay See amount"}
	rosterHeader   = []string{"Group No.", "Family", "Agent", "Agent name", "Agency code", "District"}
	testTicketCols = TicketColumns{Name: "Agent Name", Group: "Group No.", Prize: "Lay See amount"}
	testRosterCols = EligibilityColumns{
		Group:      "Group No.",
		Family:     "Family",
		AgentCode:  "Agent",
		AgentName:  "Agent name",
		AgencyCode: "Agency code",
		District:   "District",
	}
)
