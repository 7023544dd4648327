package institutions

import (
	"net/url"
	"strconv"
	"time"

	basispoort "github.com/basispoort/basispoort-sync-client"
)

// ResultMetadata accompanies every directory response and tells when the
// underlying data last changed and when this response was generated.
type ResultMetadata struct {
	MutationTimestamp   time.Time `json:"mutationTimestamp"`
	GenerationTimestamp time.Time `json:"generationTimestamp"`
}

// Overview is the compact institution record.
type Overview struct {
	Metadata       ResultMetadata `json:"metaResult"`
	ID             basispoort.ID  `json:"id"`
	Name           string         `json:"naam,omitempty"`
	BrinCode       string         `json:"brinCode,omitempty"`
	DependanceCode string         `json:"dependanceCode,omitempty"`
	City           string         `json:"plaats,omitempty"`
	Active         bool           `json:"actief"`
}

// Details is the full institution record, including its address and contact
// information.
type Details struct {
	Metadata       ResultMetadata `json:"metaResult"`
	ID             basispoort.ID  `json:"id"`
	Name           string         `json:"naam,omitempty"`
	BrinCode       string         `json:"brinCode,omitempty"`
	DependanceCode string         `json:"dependanceCode,omitempty"`
	Street         string         `json:"straat,omitempty"`
	HouseNumber    string         `json:"huisnummer,omitempty"`
	ZipCode        string         `json:"postcode,omitempty"`
	City           string         `json:"plaats,omitempty"`
	Phone          string         `json:"telefoon,omitempty"`
	Email          string         `json:"email,omitempty"`
	Website        string         `json:"website,omitempty"`
	Active         bool           `json:"actief"`
}

// Group is a class group within an institution.
type Group struct {
	ID         basispoort.ID   `json:"id"`
	Name       string          `json:"naam,omitempty"`
	Year       int             `json:"jaargroep,omitempty"`
	StudentIDs []basispoort.ID `json:"leerlingen,omitempty"`
}

// Groups lists the class groups of one institution.
type Groups struct {
	Metadata ResultMetadata `json:"metaResult"`
	Groups   []Group        `json:"groepen"`
}

// Student is a pupil enrolled at an institution. ChainID is the ECK chain ID
// when the institution shares it.
type Student struct {
	ID        basispoort.ID `json:"id"`
	ChainID   string        `json:"eckId,omitempty"`
	FirstName string        `json:"voornaam,omitempty"`
	Infix     string        `json:"tussenvoegsel,omitempty"`
	LastName  string        `json:"achternaam,omitempty"`
	GroupID   basispoort.ID `json:"groep,omitempty"`
}

// Students lists the pupils of one institution.
type Students struct {
	Metadata ResultMetadata `json:"metaResult"`
	Students []Student      `json:"leerlingen"`
}

// StaffMember is a teacher or other staff member of an institution.
type StaffMember struct {
	ID        basispoort.ID `json:"id"`
	FirstName string        `json:"voornaam,omitempty"`
	Infix     string        `json:"tussenvoegsel,omitempty"`
	LastName  string        `json:"achternaam,omitempty"`
	Email     string        `json:"email,omitempty"`
	Role      string        `json:"rol,omitempty"`
}

// Staff lists the staff members of one institution.
type Staff struct {
	Metadata ResultMetadata `json:"metaResult"`
	Staff    []StaffMember  `json:"staf"`
}

// SynchronizationPermission tells whether the institution currently allows
// this vendor to synchronize its data.
type SynchronizationPermission struct {
	Metadata ResultMetadata `json:"metaResult"`
	Granted  bool           `json:"toegekend"`
}

// SearchPredicate narrows an institution search ("NAW search"). Zero-valued
// fields are left out of the query; ActiveOnly limits results to active
// institutions.
type SearchPredicate struct {
	BrinCode       string
	DependanceCode string
	Name           string
	ZipCode        string
	City           string
	ActiveOnly     bool
}

func (p SearchPredicate) values() url.Values {
	values := url.Values{}
	if p.BrinCode != "" {
		values.Set("brinCode", p.BrinCode)
	}
	if p.DependanceCode != "" {
		values.Set("dependanceCode", p.DependanceCode)
	}
	if p.Name != "" {
		values.Set("naam", p.Name)
	}
	if p.ZipCode != "" {
		values.Set("postcode", p.ZipCode)
	}
	if p.City != "" {
		values.Set("plaats", p.City)
	}
	values.Set("activeOnly", strconv.FormatBool(p.ActiveOnly))
	return values
}

// SearchResult is one institution matching a [SearchPredicate].
type SearchResult struct {
	ID             basispoort.ID `json:"id"`
	Name           string        `json:"naam,omitempty"`
	BrinCode       string        `json:"brinCode,omitempty"`
	DependanceCode string        `json:"dependanceCode,omitempty"`
	ZipCode        string        `json:"postcode,omitempty"`
	City           string        `json:"plaats,omitempty"`
	Active         bool          `json:"actief"`
}
