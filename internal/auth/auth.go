// Package auth answers ownership questions about session users.
package auth

import "github.com/dmitrymomot/workopia/pkg/session"

// IsOwner reports whether user is signed in and owns a resource whose
// owner id is ownerID.
func IsOwner(user *session.User, ownerID int64) bool {
	return user != nil && user.ID > 0 && user.ID == ownerID
}
