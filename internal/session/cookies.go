package session

import "time"

// Cookie names mirrored alongside the session record. Browser clients
// of the same backend read these two cookies, so the CLI keeps an
// equivalent mirror: both entries are written together on login and
// removed together on logout, never one without the other.
const (
	CookieToken  = "user_token"
	CookieUserID = "user_id"
)

// cookieTTL matches the backend's session lifetime.
const cookieTTL = 24 * time.Hour

// Cookie is one mirrored entry.
type Cookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// cookieJar is the persisted mirror record.
type cookieJar struct {
	Cookies []Cookie `json:"cookies"`
}

// mirrorFor builds the two-entry mirror for an identity.
func mirrorFor(id Identity, now time.Time) cookieJar {
	expires := now.Add(cookieTTL)
	return cookieJar{Cookies: []Cookie{
		{Name: CookieToken, Value: id.Token, Expires: expires},
		{Name: CookieUserID, Value: id.UserID(), Expires: expires},
	}}
}

// valid reports whether the mirror is complete and unexpired. A partial
// mirror means the pair invariant was broken and the session cannot be
// trusted.
func (j cookieJar) valid(now time.Time) bool {
	var token, userID bool
	for _, c := range j.Cookies {
		if now.After(c.Expires) {
			return false
		}
		switch c.Name {
		case CookieToken:
			token = c.Value != ""
		case CookieUserID:
			userID = c.Value != ""
		}
	}
	return token && userID
}
