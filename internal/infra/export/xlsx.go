package export

import (
	"io"

	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

func WriteLeadsXLSX(w io.Writer, leads []*queries.LeadView) error {
	records := make([][]string, 0, len(leads))
	for _, l := range leads {
		records = append(records, leadRecord(l))
	}
	return writeSheet(w, "Leads", leadHeader, records)
}

func WriteSubscribersXLSX(w io.Writer, subscribers []*queries.SubscriberView) error {
	records := make([][]string, 0, len(subscribers))
	for _, s := range subscribers {
		records = append(records, subscriberRecord(s))
	}
	return writeSheet(w, "Newsletter", subscriberHeader, records)
}

func writeSheet(w io.Writer, sheet string, header []string, records [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errs.Wrap(err, "failed to name sheet")
	}

	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errs.Wrap(err, "failed to compute cell name")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errs.Wrap(err, "failed to write sheet row")
	}
	return nil
}
