package services

import (
	"fmt"
	"net/url"
	"strings"
)

// nationalNumberLen is the length of an Indian mobile number without the
// country code.
const nationalNumberLen = 10

// ShareMessage is the text sent to a customer along with their quotation.
func ShareMessage(q *Quotation, companyName string) string {
	return fmt.Sprintf("Dear %s, here is your quotation from %s. Quotation No: %s",
		q.Customer.Name, companyName, FormatQuotationNo(q.QuotationNo))
}

// NationalNumber reduces a mobile number as typed ("+91 98765-43210",
// "098765 43210") to its ASCII digits without a leading country code
// (with or without the 00 international prefix) or trunk zero. The country code is only stripped when what remains is still
// a full national number.
func NationalNumber(mobile, countryCode string) string {
	var b strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if countryCode != "" {
		for _, prefix := range []string{"00" + countryCode, countryCode} {
			if len(digits) >= nationalNumberLen+len(prefix) && strings.HasPrefix(digits, prefix) {
				digits = digits[len(prefix):]
				break
			}
		}
	}
	if len(digits) > nationalNumberLen {
		digits = strings.TrimPrefix(digits, "0")
	}
	return digits
}

// FormatMobile renders a customer's mobile number with the country code,
// e.g. "+91 9876543210". An empty number stays empty.
func FormatMobile(mobile, countryCode string) string {
	national := NationalNumber(mobile, countryCode)
	if national == "" {
		return ""
	}
	if countryCode == "" {
		return national
	}
	return "+" + countryCode + " " + national
}

// WhatsAppLink returns a wa.me link that opens a chat with the customer's
// mobile number with the share message filled in.
func WhatsAppLink(q *Quotation, companyName, countryCode string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + countryCode + NationalNumber(q.Customer.Mobile, countryCode),
		RawQuery: url.Values{"text": {ShareMessage(q, companyName)}}.Encode(),
	}
	return u.String()
}
