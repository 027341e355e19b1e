// =============================================================================
// Stock Transfer Tracker - Transfer Log Writer
// =============================================================================
//
// This module owns the append-only transfer log workbook. Submitted draft
// rows are filtered down to the persistable ones, stamped with the current
// date and time in the configured fixed zone, and appended to the existing
// history. Records are written once and never updated or deleted.
//
// FILE LAYOUT:
//   One sheet, header row:
//     Date | Time | Item No | Item Description | Quantity | From Location |
//     To Location | Batch Ref
//   Batch Ref ties all records of one submit together; logs written by older
//   tools simply lack the column and read back with an empty batch ref.
//
// SAFETY:
//   Appending rewrites the workbook file on save, so an existing log is
//   copied to a timestamped backup first. The logical log stays strictly
//   additive even if a save is torn.
//
// =============================================================================

package transferlog

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/brianbrainbrian/TransferTracker/internal/types"
	"github.com/brianbrainbrian/TransferTracker/pkg/utils"
)

// ErrNoValidRows is returned by Submit when no draft row passes the
// persistence filter. Nothing is written; callers report it as a warning,
// not a failure.
var ErrNoValidRows = errors.New("no valid transfer rows to submit")

// Columns is the header row of the transfer log workbook.
var Columns = []string{
	"Date",
	"Time",
	"Item No",
	"Item Description",
	"Quantity",
	"From Location",
	"To Location",
	"Batch Ref",
}

// =============================================================================
// WRITER
// =============================================================================

// Writer appends submitted transfers to the log workbook.
type Writer struct {
	path     string
	location *time.Location
	logger   *zap.Logger

	// Now supplies the submission timestamp and exists so tests can pin it.
	Now func() time.Time
}

// SubmitResult summarises one submit batch.
type SubmitResult struct {
	// Written is the number of records appended.
	Written int

	// Skipped is the number of draft rows dropped by the persistence filter
	// (blank selection or non-positive quantity).
	Skipped int

	// BatchID is the reference stamped on every record of this batch.
	BatchID string

	// LogPath is the workbook the batch was written to.
	LogPath string

	// Records are the appended records, in written order.
	Records []types.Record
}

// NewWriter creates a Writer for the given workbook path. Timestamps are
// taken in the supplied fixed location, never the process zone.
func NewWriter(path string, location *time.Location, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		path:     path,
		location: location,
		logger:   logger,
		Now:      time.Now,
	}
}

// Submit filters the draft rows, stamps the survivors and appends them to the
// log workbook, creating it if this is the first submit. With no survivors it
// returns ErrNoValidRows and writes nothing.
func (w *Writer) Submit(rows []types.DraftRow) (*SubmitResult, error) {
	var valid []types.DraftRow
	for _, row := range rows {
		if row.Valid() {
			valid = append(valid, row)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidRows
	}

	now := w.Now().In(w.location)
	batchID := uuid.NewString()

	records := make([]types.Record, 0, len(valid))
	for _, row := range valid {
		code, description := types.SplitLabel(row.PartLabel)
		records = append(records, types.Record{
			Date:            now.Format("2006-01-02"),
			Time:            now.Format("15:04:05"),
			ItemNo:          code,
			ItemDescription: description,
			Quantity:        row.Quantity,
			FromLocation:    row.FromLocation,
			ToLocation:      row.ToLocation,
			BatchID:         batchID,
		})
	}

	if err := w.append(records); err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Written: len(records),
		Skipped: len(rows) - len(records),
		BatchID: batchID,
		LogPath: w.path,
		Records: records,
	}

	w.logger.Info("transfer batch written",
		zap.String("batch_id", batchID),
		zap.Int("records", result.Written),
		zap.Int("skipped", result.Skipped),
		zap.String("log", w.path),
	)

	return result, nil
}

// append writes the records after the existing history. The workbook save
// rewrites the whole file, so an existing log is backed up first.
func (w *Writer) append(records []types.Record) error {
	var (
		f        *excelize.File
		sheet    string
		startRow int
		err      error
	)

	if utils.FileExists(w.path) {
		backup, err := utils.BackupFile(w.path)
		if err != nil {
			return fmt.Errorf("failed to back up transfer log: %w", err)
		}
		w.logger.Debug("transfer log backed up", zap.String("backup", backup))

		f, err = excelize.OpenFile(w.path)
		if err != nil {
			return fmt.Errorf("failed to open transfer log %s: %w", w.path, err)
		}
		sheet = f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to read transfer log %s: %w", w.path, err)
		}
		startRow = len(rows) + 1
	} else {
		f = excelize.NewFile()
		sheet = f.GetSheetName(0)
		header := make([]interface{}, len(Columns))
		for i, col := range Columns {
			header[i] = col
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			f.Close()
			return fmt.Errorf("failed to write log header: %w", err)
		}
		startRow = 2
	}
	defer f.Close()

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("failed to address log row: %w", err)
		}
		values := []interface{}{
			rec.Date,
			rec.Time,
			rec.ItemNo,
			rec.ItemDescription,
			rec.Quantity,
			rec.FromLocation,
			rec.ToLocation,
			rec.BatchID,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write log row %d: %w", startRow+i, err)
		}
	}

	if err = f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save transfer log %s: %w", w.path, err)
	}
	return nil
}

// =============================================================================
// READER
// =============================================================================

// Tail returns the last n records of the log, oldest first; n <= 0 returns
// the whole log. A log that does not exist yet yields no records and no
// error, matching first-run behaviour.
func Tail(path string, n int) ([]types.Record, error) {
	if !utils.FileExists(path) {
		return nil, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transfer log %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read transfer log %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	data := rows[1:]
	if n > 0 && len(data) > n {
		data = data[len(data)-n:]
	}

	records := make([]types.Record, 0, len(data))
	for _, row := range data {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// Count returns the number of records in the log, excluding the header.
func Count(path string) (int, error) {
	if !utils.FileExists(path) {
		return 0, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open transfer log %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("failed to read transfer log %s: %w", path, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return len(rows) - 1, nil
}

// recordFromRow maps one workbook row onto a Record. Short rows (legacy logs
// without the batch column) fill the missing trailing fields with "".
func recordFromRow(row []string) types.Record {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return row[i]
	}
	quantity, _ := strconv.Atoi(cell(4))
	return types.Record{
		Date:            cell(0),
		Time:            cell(1),
		ItemNo:          cell(2),
		ItemDescription: cell(3),
		Quantity:        quantity,
		FromLocation:    cell(5),
		ToLocation:      cell(6),
		BatchID:         cell(7),
	}
}
