// Package dataset loads the historical shot dataset from a CSV file.
//
// The file carries a header row; columns are resolved by name so exports
// with extra columns (player ids, game dates) load unchanged. Required
// columns: SHOT_DISTANCE, LOC_X, LOC_Y, SHOT_MADE_FLAG. An optional
// SHOT_ATTEMPTED_FLAG column filters non-attempts when present.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YellowCow9/nba-sim/internal/domain/model"
	"github.com/YellowCow9/nba-sim/pkg/logger"
	"github.com/YellowCow9/nba-sim/pkg/metrics"
)

// Required column names, matched case-insensitively.
const (
	colDistance  = "SHOT_DISTANCE"
	colLocX      = "LOC_X"
	colLocY      = "LOC_Y"
	colMade      = "SHOT_MADE_FLAG"
	colAttempted = "SHOT_ATTEMPTED_FLAG" // optional
)

// Loader reads shot records from disk.
type Loader struct {
	maxRows int
	log     logger.Logger
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads all shot records from the CSV file at path.
//
// A missing or unreadable file is fatal. Rows with malformed numeric
// fields are skipped with a warning; the batch policy throughout the
// service is skip-and-continue, counted on the records_skipped metric.
func (l *Loader) Load(ctx context.Context, path string) ([]model.ShotRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenDataset, path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := l.read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseDataset, path, err)
	}
	metrics.UpdateDatasetShots(len(records))
	return records, nil
}

// read parses CSV rows from r into shot records.
func (l *Loader) read(ctx context.Context, r io.Reader) ([]model.ShotRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields; columns resolve by header

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, err
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.ShotRecord
	var skipped int
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rec, ok := cols.parse(row)
		if !ok {
			skipped++
			metrics.RecordRecordSkipped()
			if l.log != nil {
				l.log.Warn(ctx, "skipping malformed shot row", logger.Int("line", line))
			}
			continue
		}
		records = append(records, rec)
		if l.maxRows > 0 && len(records) >= l.maxRows {
			break
		}
	}

	if l.log != nil {
		l.log.Info(ctx, "dataset loaded",
			logger.Int("shots", len(records)),
			logger.Int("skipped", skipped),
		)
	}
	return records, nil
}

// columns holds resolved header indexes. attempted is -1 when absent.
type columns struct {
	distance  int
	locX      int
	locY      int
	made      int
	attempted int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{distance: -1, locX: -1, locY: -1, made: -1, attempted: -1}
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case colDistance:
			cols.distance = i
		case colLocX:
			cols.locX = i
		case colLocY:
			cols.locY = i
		case colMade:
			cols.made = i
		case colAttempted:
			cols.attempted = i
		}
	}
	if cols.distance < 0 || cols.locX < 0 || cols.locY < 0 || cols.made < 0 {
		return columns{}, fmt.Errorf("%w: need %s, %s, %s, %s",
			ErrMissingHeader, colDistance, colLocX, colLocY, colMade)
	}
	return cols, nil
}

// parse converts one CSV row into a ShotRecord. The second return is false
// for rows that are short or non-numeric, and for rows whose attempted
// flag (when the column exists) is zero.
func (c columns) parse(row []string) (model.ShotRecord, bool) {
	max := c.distance
	for _, idx := range []int{c.locX, c.locY, c.made, c.attempted} {
		if idx > max {
			max = idx
		}
	}
	if len(row) <= max {
		return model.ShotRecord{}, false
	}

	if c.attempted >= 0 {
		attempted, err := strconv.ParseFloat(strings.TrimSpace(row[c.attempted]), 64)
		if err != nil {
			return model.ShotRecord{}, false
		}
		if attempted == 0 {
			return model.ShotRecord{}, false
		}
	}

	dist, errD := strconv.ParseFloat(strings.TrimSpace(row[c.distance]), 64)
	x, errX := strconv.ParseFloat(strings.TrimSpace(row[c.locX]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(row[c.locY]), 64)
	made, errM := strconv.ParseFloat(strings.TrimSpace(row[c.made]), 64)
	if errD != nil || errX != nil || errY != nil || errM != nil {
		return model.ShotRecord{}, false
	}

	return model.ShotRecord{
		Distance: dist,
		LocX:     x,
		LocY:     y,
		Made:     made != 0,
	}, true
}
