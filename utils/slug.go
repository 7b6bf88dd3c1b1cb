package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify chuyển tên tiếng Việt thành slug không dấu dùng trong URL
func Slugify(name string) string {
	slug := strings.ToLower(unidecode.Unidecode(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug nối thêm hậu tố đếm cho đến khi slug chưa bị dùng.
// exists trả về true nếu slug đã tồn tại.
func UniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "listing"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
