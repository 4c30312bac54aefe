package identity

import (
	"strings"
	"time"
)

// User is the authenticated principal's profile as served by GET /profile/me.
// Field names and JSON keys mirror the backend response; optional fields are
// empty when the profile omits them.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Phone     string `json:"phone,omitempty"`
	URL       string `json:"url,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Address   string `json:"address,omitempty"`

	HomeLatitude  *float64 `json:"homeLatitude,omitempty"`
	HomeLongitude *float64 `json:"homeLongitude,omitempty"`

	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`

	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
	PlacesCount    int `json:"placesCount"`
	ListsCount     int `json:"listsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	IsFollowing bool `json:"isFollowing,omitempty"`
}

// DisplayName returns the user's full name, or the email when both name
// parts are empty.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
