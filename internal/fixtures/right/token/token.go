// Package token is a test fixture. Together with
// internal/fixtures/left/token it provides two distinct types whose
// reflect string form collides ("token.Kind").
package token

type Kind struct {
	Code int
}
