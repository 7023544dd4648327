// Package basispoort holds the identifier types shared by the Basispoort
// service clients.
//
// The actual API surfaces live in the sub-packages: rest (the authenticated
// transport client), hostedlika (hosted license provider management) and
// institutions (the institution directory, "Instellingen V2").
package basispoort

// ID is a Basispoort-assigned numeric identifier, used for institutions,
// students and staff members across all services.
type ID = int64
