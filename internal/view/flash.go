package view

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeyError    = "error"
)

// FlashData is the set of one-shot messages handed to the page layout.
type FlashData struct {
	Error []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Error) == 0
}

// flashSession returns the flash session. A cookie that no longer decodes
// (for example one signed with a rotated secret) still yields a fresh session;
// replace reports that it must be saved so the stale cookie is overwritten.
// A nil session means no session middleware is installed.
func flashSession(c echo.Context) (sess *sessions.Session, replace bool) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		if err != nil {
			c.Logger().Warn("flash session unavailable: ", err)
		}
		return nil, false
	}
	if err != nil {
		c.Logger().Warn("discarding unreadable flash session: ", err)
		return sess, true
	}
	return sess, false
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	sess, _ := flashSession(c)
	if sess == nil {
		return
	}
	sess.AddFlash(message, flashKeyError)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warn("failed to save flash session: ", err)
	}
}

// GetFlashData retrieves and clears flash messages from the session.
// Without a session middleware it returns empty data.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, replace := flashSession(c)
	if sess == nil {
		return data
	}

	// Flashes() reads and removes the messages from the session.
	data.Error = toStrings(sess.Flashes(flashKeyError))

	// Persist the clearing only when something was consumed or the cookie was bad.
	if !data.Empty() || replace {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			c.Logger().Warn("failed to save flash session: ", err)
		}
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
