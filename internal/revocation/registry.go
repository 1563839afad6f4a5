package revocation

import "context"

// Registry is the set of token identifiers (jti) that are no longer
// valid even though unexpired. Insert is idempotent; entries must
// survive at least until the token they revoke would expire anyway.
type Registry interface {
	Insert(ctx context.Context, jti string) error

	Contains(ctx context.Context, jti string) (bool, error)
}
