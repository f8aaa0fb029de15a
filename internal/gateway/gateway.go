// Package gateway turns a phone number and a carrier key into the
// email-to-SMS or email-to-MMS bridge address for that carrier.
package gateway

import (
	"sort"
	"strings"
)

// PhoneDigits strips everything but digits and drops a leading US country
// code from an 11-digit result. Length is not validated.
func PhoneDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		return digits[1:]
	}
	return digits
}

// Table maps carrier keys to bridge domains. MMS is usually a subset of SMS.
type Table struct {
	SMS map[string]string `yaml:"sms"`
	MMS map[string]string `yaml:"mms"`
}

func DefaultTable() Table {
	return Table{
		SMS: map[string]string{
			"att":        "txt.att.net",
			"verizon":    "vtext.com",
			"tmobile":    "tmomail.net",
			"uscellular": "email.uscc.net",
			"googlefi":   "msg.fi.google.com",
		},
		MMS: map[string]string{
			"att":        "mms.att.net",
			"verizon":    "vzwpix.com",
			"tmobile":    "tmomail.net",
			"uscellular": "mms.uscc.net",
			"googlefi":   "msg.fi.google.com",
		},
	}
}

// Merge returns a copy of t with the entries of other added or replaced.
func (t Table) Merge(other Table) Table {
	merged := Table{
		SMS: make(map[string]string, len(t.SMS)+len(other.SMS)),
		MMS: make(map[string]string, len(t.MMS)+len(other.MMS)),
	}
	for k, v := range t.SMS {
		merged.SMS[k] = v
	}
	for k, v := range t.MMS {
		merged.MMS[k] = v
	}
	for k, v := range other.SMS {
		merged.SMS[normalizeCarrier(k)] = v
	}
	for k, v := range other.MMS {
		merged.MMS[normalizeCarrier(k)] = v
	}
	return merged
}

// Address resolves the bridge address for digits on carrier. It reports
// false when the selected map has no entry for the carrier.
func (t Table) Address(carrier, digits string, mms bool) (string, bool) {
	domains := t.SMS
	if mms {
		domains = t.MMS
	}

	domain, ok := domains[normalizeCarrier(carrier)]
	if !ok || domain == "" {
		return "", false
	}
	return digits + "@" + domain, true
}

// Carriers lists the SMS carrier keys.
func (t Table) Carriers() []string {
	keys := make([]string, 0, len(t.SMS))
	for k := range t.SMS {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeCarrier(carrier string) string {
	return strings.ToLower(strings.TrimSpace(carrier))
}
