package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp", ".tiff", ".ico"}

// Matched as substrings of the lower-cased hostname.
var imageHosts = []string{
	"placehold.co",
	"dummyimage.com",
	"wikimedia.org",
	"imgur.com",
	"unsplash.com",
	"picsum.photos",
	"pexels.com",
	"amazonaws.com",
	"cloudinary.com",
}

var (
	unsplashPhotoPattern = regexp.MustCompile(`/photo-[A-Za-z0-9]{10,}`)
	wikimediaMediaFile   = regexp.MustCompile(`#/media/File:([^?&]+)`)
	wikimediaFile        = regexp.MustCompile(`File:([^#?&]+)`)
)

const (
	wikimediaPagePrefix = "commons.wikimedia.org/wiki/"
	wikimediaUploadBase = "https://upload.wikimedia.org/wikipedia/commons"
)

// IsValidImageURL reports whether raw looks like a direct image URL. The
// check is purely syntactic; nothing is fetched.
func IsValidImageURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	path := strings.ToLower(u.EscapedPath())
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	for _, h := range imageHosts {
		if !strings.Contains(host, h) {
			continue
		}
		if host == "images.unsplash.com" {
			return unsplashPhotoPattern.MatchString(u.Path)
		}
		return true
	}
	return false
}

// FixImageURL rewrites a Wikimedia Commons file page URL into a direct
// upload.wikimedia.org URL. Anything it cannot rewrite is returned as is.
//
// The directory prefix is taken from the first two characters of the file
// name. Commons actually shards by the MD5 of the name, so the result is only
// correct when those happen to coincide.
func FixImageURL(raw string) string {
	if !strings.Contains(raw, wikimediaPagePrefix) {
		return raw
	}

	var filename string
	if m := wikimediaMediaFile.FindStringSubmatch(raw); m != nil {
		filename = m[1]
	} else if m := wikimediaFile.FindStringSubmatch(raw); m != nil {
		filename = m[1]
	}
	if filename == "" {
		return raw
	}

	decoded, err := url.PathUnescape(filename)
	if err != nil || !utf8.ValidString(decoded) {
		return raw
	}

	runes := []rune(decoded)
	first := strings.ToLower(string(runes[0]))
	second := "a"
	if len(runes) > 1 {
		second = strings.ToLower(string(runes[1]))
	}

	return fmt.Sprintf("%s/%s/%s%s/%s", wikimediaUploadBase, first, first, second, decoded)
}
