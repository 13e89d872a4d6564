package export

import (
	"encoding/csv"
	"io"

	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/usecase/queries"
)

func WriteLeadsCSV(w io.Writer, leads []*queries.LeadView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(leadHeader); err != nil {
		return errs.Wrap(err, "failed to write CSV header")
	}

	for _, l := range leads {
		if err := cw.Write(leadRecord(l)); err != nil {
			return errs.Wrap(err, "failed to write CSV record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(err, "failed to flush CSV")
	}
	return nil
}

func WriteSubscribersCSV(w io.Writer, subscribers []*queries.SubscriberView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(subscriberHeader); err != nil {
		return errs.Wrap(err, "failed to write CSV header")
	}

	for _, s := range subscribers {
		if err := cw.Write(subscriberRecord(s)); err != nil {
			return errs.Wrap(err, "failed to write CSV record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(err, "failed to flush CSV")
	}
	return nil
}

func leadRecord(l *queries.LeadView) []string {
	return []string{
		l.ID.String(), l.Name, l.Role, l.Company, l.Phone, l.Email,
		l.Service, l.Message, l.Status, l.Notes,
		l.CreatedAt.Format(timestampLayout), l.UpdatedAt.Format(timestampLayout),
	}
}

func subscriberRecord(s *queries.SubscriberView) []string {
	welcomeSentAt := ""
	if s.WelcomeSentAt != nil {
		welcomeSentAt = s.WelcomeSentAt.Format(timestampLayout)
	}
	return []string{s.ID.String(), s.Email, welcomeSentAt, s.CreatedAt.Format(timestampLayout)}
}
