// Package csrf implements an anti-forgery token protocol with
// BREACH-resistant masking.
//
// Each session gets a stable secret derived with HMAC-SHA256 from a
// process-wide key and the session identifier, persisted through a
// SecretStore. The secret itself never travels to the client: every
// render masks it with a fresh random pad (pad followed by pad XOR
// secret, base64 encoded), so the transmitted bytes differ on every
// response even though the secret is stable. Verification unmasks the
// submitted token and compares it to the session secret in constant
// time.
//
//	store := csrf.NewMemoryStore()
//	svc, err := csrf.New(secretKey, store)
//	...
//	secret, err := svc.Issue(ctx, sessionID)
//	token := svc.Mask(secret)  // embed in the page
//	...
//	if !svc.Verify(submittedToken, secret) {
//		// reject the request before touching the form
//	}
//
// Two SecretStore implementations ship with the package: MemoryStore
// for tests and single-instance apps, and RedisStore for shared
// session storage. Anything that can hold an opaque byte secret per
// session can implement the interface.
package csrf
