// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package supplier

const (
	// ContactKindVendor marks a row as an external vendor contact.
	ContactKindVendor = "vendor"
	// ContactKindCS marks a row as an internal customer-success contact.
	ContactKindCS = "cs"
)

// ContactRow is a flat row returned by the warehouse compliance query.
// Every row carries the vendor it belongs to alongside a single contact.
type ContactRow struct {
	VendorCode  string `db:"vendor_code"`
	VendorName  string `db:"vendor_name"`
	Status      string `db:"compliance_status"`
	ContactKind string `db:"contact_kind"`
	ContactName string `db:"contact_name"`
	Email       string `db:"email"`
}

// Contact is a named email recipient.
type Contact struct {
	Name  string
	Email string
}

// Vendor groups every contact attributed to a single vendor code.
// Instances are built once per run and never mutated afterwards.
type Vendor struct {
	Code     string
	Name     string
	Status   string
	Contacts []Contact
	CSTeam   []Contact
}

// Build groups the query rows by vendor code into vendor records.
// Vendors are returned in first-seen row order and contacts keep the
// order they have in rows. Rows repeating the same (vendor, kind, email)
// triple are collapsed, so a contact is attributed to a vendor only once.
func Build(rows []ContactRow) []Vendor {
	vendors := make([]Vendor, 0)
	indexByCode := make(map[string]int)
	seenEmails := make(map[string]struct{})

	for _, row := range rows {
		if row.VendorCode == "" {
			continue
		}

		idx, ok := indexByCode[row.VendorCode]
		if !ok {
			vendors = append(vendors, Vendor{
				Code:   row.VendorCode,
				Name:   row.VendorName,
				Status: row.Status,
			})
			idx = len(vendors) - 1
			indexByCode[row.VendorCode] = idx
		}

		if row.Email == "" {
			continue
		}

		dedupeKey := row.VendorCode + "\x00" + row.ContactKind + "\x00" + row.Email
		if _, ok := seenEmails[dedupeKey]; ok {
			continue
		}
		seenEmails[dedupeKey] = struct{}{}

		contact := Contact{
			Name:  row.ContactName,
			Email: row.Email,
		}

		switch row.ContactKind {
		case ContactKindCS:
			vendors[idx].CSTeam = append(vendors[idx].CSTeam, contact)
		default:
			vendors[idx].Contacts = append(vendors[idx].Contacts, contact)
		}
	}

	return vendors
}
