// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Format selects the file serialization of a report.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatForPath picks XLSX for a .xlsx path and CSV for anything else.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Emit writes the report to path when path is set, then prints a
// confirmation to out. Without a path each record is printed to out.
func Emit(rep Report, path string, out io.Writer) error {
	if path == "" {
		return Print(out, rep.Records)
	}
	if err := WriteFile(path, FormatForPath(path), rep.Records); err != nil {
		return err
	}
	fmt.Fprintf(out, "Results saved to %s\n", path)
	return nil
}

// WriteFile serializes records to path, replacing any existing file. The
// data is written to a temporary file in the same directory and renamed
// into place, so a failure never leaves a partial report behind. A new file
// gets the default 0666 mode less the umask; a replaced file keeps its mode.
func WriteFile(path string, format Format, records []types.Record) (err error) {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	switch format {
	case FormatXLSX:
		err = WriteXLSX(tmp, records)
	default:
		err = WriteCSV(tmp, records)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if fi, statErr := os.Stat(path); statErr == nil {
		if err = os.Chmod(tmpPath, fi.Mode().Perm()); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
