// Package token is a test fixture. Together with
// internal/fixtures/right/token it provides two distinct types whose
// reflect string form collides ("token.Kind").
package token

type Kind struct {
	Name string
}
