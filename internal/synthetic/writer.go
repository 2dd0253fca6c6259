package synthetic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

const outputFilePermission = 0o600

// header matches the column names the dataset loader resolves.
var header = []string{"PLAYER_ID", "SHOT_DISTANCE", "LOC_X", "LOC_Y", "SHOT_MADE_FLAG", "SHOT_ATTEMPTED_FLAG"}

// WriteCSV serializes shots in the dataset's CSV layout.
func WriteCSV(w io.Writer, shots []Shot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range shots {
		made := "0"
		if s.Record.Made {
			made = "1"
		}
		row := []string{
			s.PlayerID,
			strconv.FormatFloat(s.Record.Distance, 'f', -1, 64),
			strconv.FormatFloat(s.Record.LocX, 'f', 1, 64),
			strconv.FormatFloat(s.Record.LocY, 'f', 1, 64),
			made,
			"1",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteFile generates and writes a dataset to path in one call.
func WriteFile(path string, shots []Shot) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, shots)
}
