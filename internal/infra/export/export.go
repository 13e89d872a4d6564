// Package export renders pipeline data as downloadable spreadsheets.
package export

import (
	"leadpipe/internal/pkg/errs"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type Entity string

const (
	EntityLeads      Entity = "leads"
	EntityNewsletter Entity = "newsletter"
)

var (
	ErrUnknownFormat   = errs.New("unknown export format")
	ErrUnknownEntity   = errs.New("unknown export entity")
	ErrNothingToExport = errs.New("nothing to export")
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", ErrUnknownFormat
}

func ParseEntity(s string) (Entity, error) {
	switch Entity(s) {
	case EntityLeads, EntityNewsletter:
		return Entity(s), nil
	}
	return "", ErrUnknownEntity
}

// Filename is the attachment name offered to the browser.
func Filename(entity Entity, format Format) string {
	return string(entity) + "_export." + string(format)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

const timestampLayout = "2006-01-02 15:04:05"

var leadHeader = []string{
	"ID", "Name", "Role", "Company", "Phone", "Email",
	"Service", "Message", "Status", "Notes", "Created At", "Updated At",
}

var subscriberHeader = []string{"ID", "Email", "Welcome Sent At", "Created At"}
