package phone

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link for a validated phone. The leading
// "+" is dropped per the wa.me URL scheme; an optional message is carried
// as a percent-encoded "text" query parameter.
func WhatsAppLink(r Result, message string) string {
	number := r.CountryCode + r.NationalNumber
	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// MailtoLink builds a mailto: URI with percent-encoded subject and body.
func MailtoLink(addr, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+url.QueryEscape(subject))
	}
	if body != "" {
		params = append(params, "body="+url.QueryEscape(body))
	}
	link := "mailto:" + addr
	if len(params) > 0 {
		link += "?" + strings.Join(params, "&")
	}
	return link
}
