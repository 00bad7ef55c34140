package models

// Icon identifies the glyph drawn for a social link.
type Icon string

const (
	IconTwitter   Icon = "twitter"
	IconInstagram Icon = "instagram"
	IconFacebook  Icon = "facebook"
)

// SocialLink is one fixed external profile shown under the search bar
type SocialLink struct {
	Name string // Accessible name, rendered visually hidden
	URL  string // Destination, opened in a new browsing context
	Icon Icon
}

// DefaultSocialLinks returns the profile links in display order.
// A fresh slice is returned on each call so callers may reorder freely.
func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{Name: "Twitter", URL: "https://twitter.com/", Icon: IconTwitter},
		{Name: "Instagram", URL: "https://www.instagram.com/deivid_gm25/", Icon: IconInstagram},
		{Name: "Facebook", URL: "https://www.facebook.com/davicho.miranda.182/", Icon: IconFacebook},
	}
}
