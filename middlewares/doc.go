// Package middlewares holds web.Middleware implementations: request ids,
// panic recovery, HTML form method override, the session user in logs and
// the auth/guest route gates.
//
//	app := web.New(
//	    web.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.MethodOverride(),
//	        middlewares.CurrentUser(),
//	    ),
//	)
package middlewares
