package web

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/workopia/pkg/session"
)

// registerSessionHook saves a dirty session right before the response
// header goes out. Save failures are logged, not returned.
func (c *requestContext) registerSessionHook() {
	if c.sessionHookRegistered || c.sessionManager == nil {
		return
	}
	c.sessionHookRegistered = true
	c.response.OnBeforeWrite(func() {
		if c.session == nil || !c.session.IsDirty() {
			return
		}
		if err := c.sessionManager.Store().Update(c.Context(), c.session); err != nil {
			c.LogError("failed to save session", slog.String("error", err.Error()))
			return
		}
		c.session.ClearDirty()
	})
}

func (c *requestContext) Session() (*session.Session, error) {
	if c.sessionManager == nil {
		return nil, session.ErrNotConfigured
	}
	c.registerSessionHook()

	if c.sessionLoaded {
		return c.session, nil
	}

	sess, err := c.sessionManager.LoadSession(c.Context(), c.request)
	if err != nil {
		return nil, err
	}

	c.session = sess
	c.sessionLoaded = true
	return sess, nil
}

func (c *requestContext) InitSession() error {
	if c.sessionManager == nil {
		return session.ErrNotConfigured
	}
	c.registerSessionHook()

	sess, err := c.sessionManager.CreateSession(c.Context(), c.request)
	if err != nil {
		return err
	}

	c.session = sess
	c.sessionLoaded = true
	c.sessionManager.SaveSession(c.response, sess)
	return nil
}

// currentOrNewSession returns the loaded session, starting one if the
// visitor has none.
func (c *requestContext) currentOrNewSession() (*session.Session, error) {
	sess, err := c.Session()
	if err != nil {
		return nil, err
	}
	if sess != nil {
		return sess, nil
	}
	if err := c.InitSession(); err != nil {
		return nil, err
	}
	return c.session, nil
}

func (c *requestContext) AuthenticateSession(user session.User) error {
	sess, err := c.currentOrNewSession()
	if err != nil {
		return err
	}

	sess.SetUser(user)
	if err := c.sessionManager.RotateToken(c.Context(), sess); err != nil {
		return err
	}
	c.sessionManager.SaveSession(c.response, sess)
	return nil
}

func (c *requestContext) User() *session.User {
	sess, err := c.Session()
	if err != nil {
		if !errors.Is(err, session.ErrNotConfigured) {
			c.LogWarn("failed to load session", slog.String("error", err.Error()))
		}
		return nil
	}
	if sess == nil || !sess.IsAuthenticated() {
		return nil
	}
	return sess.User
}

func (c *requestContext) IsAuthenticated() bool {
	return c.User() != nil
}

func (c *requestContext) SessionValue(key string) (any, bool) {
	sess, err := c.Session()
	if err != nil || sess == nil {
		return nil, false
	}
	return sess.GetValue(key)
}

func (c *requestContext) SetSessionValue(key string, val any) error {
	sess, err := c.currentOrNewSession()
	if err != nil {
		return err
	}
	sess.SetValue(key, val)
	return nil
}

func (c *requestContext) HasSessionValue(key string) bool {
	sess, err := c.Session()
	if err != nil || sess == nil {
		return false
	}
	return sess.Has(key)
}

func (c *requestContext) SetFlash(key, message string) error {
	sess, err := c.currentOrNewSession()
	if err != nil {
		return err
	}
	return c.sessionManager.Store().SetFlash(c.Context(), sess.ID, key, message)
}

func (c *requestContext) Flash(key string) string {
	sess, err := c.Session()
	if err != nil || sess == nil {
		return ""
	}

	msg, ok, err := c.sessionManager.Store().TakeFlash(c.Context(), sess.ID, key)
	if err != nil {
		c.LogError("failed to read flash message", slog.String("key", key), slog.String("error", err.Error()))
		return ""
	}
	if !ok {
		return ""
	}
	return msg
}

func (c *requestContext) DestroySession() error {
	if c.sessionManager == nil {
		return session.ErrNotConfigured
	}

	sess, err := c.Session()
	if err != nil {
		return err
	}
	if sess != nil {
		if err := c.sessionManager.Store().Delete(c.Context(), sess.Token); err != nil {
			return err
		}
	}

	c.sessionManager.DeleteSession(c.response)
	c.session = nil
	c.sessionLoaded = true
	return nil
}
