package hostedlika

import (
	basispoort "github.com/basispoort/basispoort-sync-client"
)

// ApplicationTag marks how an application surfaces in the Basispoort portal.
type ApplicationTag string

const (
	// TeacherApplication marks an application that is shown to teachers.
	TeacherApplication ApplicationTag = "leerkrachtApplicatie"
	// TestApplication marks an application that delivers tests.
	TestApplication ApplicationTag = "toetsApplicatie"
)

// MethodDetails describes a hosted method (a licensed learning product line)
// as registered with the license provider. ID is chosen by the vendor and
// must be unique within the vendor's catalog.
type MethodDetails struct {
	ID      string           `json:"id"`
	Code    string           `json:"code,omitempty"`
	Name    string           `json:"naam"`
	Icon    string           `json:"icon,omitempty"`
	IconURL string           `json:"iconUrl,omitempty"`
	URL     string           `json:"url,omitempty"`
	Tags    []ApplicationTag `json:"tags,omitempty"`
}

// ProductDetails describes a product under a hosted method. Unlike a method,
// a product always carries a launch URL.
type ProductDetails struct {
	ID      string           `json:"id"`
	Code    string           `json:"code,omitempty"`
	Name    string           `json:"naam"`
	Icon    string           `json:"icon,omitempty"`
	IconURL string           `json:"iconUrl,omitempty"`
	URL     string           `json:"url"`
	Tags    []ApplicationTag `json:"tags,omitempty"`
}

// UserChainID identifies a user by ECK chain ID, scoped to an institution.
type UserChainID struct {
	InstitutionID basispoort.ID `json:"instellingId"`
	ChainID       string        `json:"eckId"`
}

// BulkRequest grants or revokes permissions for many users on many methods
// and products in a single call. Empty lists are allowed and mean "none".
type BulkRequest struct {
	MethodIDs    []string        `json:"methodes"`
	ProductIDs   []string        `json:"producten"`
	UserIDs      []basispoort.ID `json:"gebruikers"`
	UserChainIDs []UserChainID   `json:"gebruikerEckIds"`
}

// Wire envelopes. The service wraps every list in a single-key object.

type methodList struct {
	Methods []MethodDetails `json:"methodes"`
}

type productList struct {
	Products []ProductDetails `json:"producten"`
}

type userIDList struct {
	Users []basispoort.ID `json:"gebruikers"`
}

type userChainIDList struct {
	Users []UserChainID `json:"gebruikers"`
}
