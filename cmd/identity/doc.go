// Package identity resolves usernames to the stable identity ids that key
// every downstream ownership-scoped query, and fronts the account-facing
// stored procedures (get_uuid, validate_sign_in, the users insert).
//
// The relational store owns accounts and credentials outright; this package
// never caches a resolved mapping across requests and never sees a password
// hash.
package identity
