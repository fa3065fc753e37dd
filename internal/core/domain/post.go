package domain

import (
	"net/url"
	"strings"
)

// Platform is the social platform an engagement post lives on.
type Platform string

const (
	PlatformX         Platform = "x"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
)

// PostRef identifies a post on an external platform.
type PostRef struct {
	Platform Platform
	PostID   string
	URL      string
}

// ParsePostURL extracts the platform and post id from a public post URL.
func ParsePostURL(raw string) (PostRef, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return PostRef{}, Errorf(CodeInvalidPostURL, "post url %q is not a valid url", raw)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "mobile.")
	segs := pathSegments(u.Path)

	ref := PostRef{URL: raw}
	switch {
	case host == "x.com" || host == "twitter.com":
		// /{handle}/status/{id}
		if len(segs) >= 3 && segs[1] == "status" {
			ref.Platform, ref.PostID = PlatformX, segs[2]
		}
	case strings.HasSuffix(host, "tiktok.com"):
		if len(segs) >= 3 && strings.HasPrefix(segs[0], "@") && segs[1] == "video" {
			ref.Platform, ref.PostID = PlatformTikTok, segs[2]
		}
	case host == "instagram.com":
		if len(segs) >= 2 && (segs[0] == "p" || segs[0] == "reel") {
			ref.Platform, ref.PostID = PlatformInstagram, segs[1]
		}
	case host == "youtu.be":
		if len(segs) >= 1 {
			ref.Platform, ref.PostID = PlatformYouTube, segs[0]
		}
	case host == "youtube.com" || host == "m.youtube.com":
		if v := strings.TrimSpace(u.Query().Get("v")); v != "" {
			ref.Platform, ref.PostID = PlatformYouTube, v
		} else if len(segs) >= 2 && segs[0] == "shorts" {
			ref.Platform, ref.PostID = PlatformYouTube, segs[1]
		}
	default:
		return PostRef{}, Errorf(CodeInvalidPostURL, "unsupported platform host %q", host)
	}
	if ref.PostID == "" {
		return PostRef{}, Errorf(CodeInvalidPostURL, "post url %q does not reference a post", raw)
	}
	return ref, nil
}

func pathSegments(p string) []string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
