// Package historialsdk is a Go client for the historial loopback API.
//
// The server holds a single process-wide session, so the client carries no
// credentials: Login and Register change the session every caller shares and
// Logout ends it.
//
//	c := historialsdk.NewClient("http://127.0.0.1:8080")
//	sess, err := c.Login(ctx, historialsdk.LoginRequest{
//		Email:    "admin@benavides.com",
//		Password: "demo",
//		Role:     "admin",
//	})
//
// Non-2xx responses are returned as *APIError values; use errors.As to inspect
// the code, or the IsLoginRequired / IsForbidden helpers.
package historialsdk
