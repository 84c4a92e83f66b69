package pipeline

import (
	"regexp"
	"strings"
)

const maxDescriptionLen = 500

// DefaultBoilerplate lists phrases that mark the start of trailing
// legal/support blocks inside scraped product descriptions.
var DefaultBoilerplate = []string{
	"shipping",
	"returns",
	"refund",
	"copyright",
	"about us",
	"contact us",
	"warranty",
	"all rights reserved",
	"follow us",
	"privacy policy",
	"terms of service",
}

var (
	bulletRe = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#x27;", "'",
		"&nbsp;", " ",
	)
)

// Cleaner strips markup and boilerplate from scraped description text.
type Cleaner struct {
	boilerplate []string
}

func NewCleaner(boilerplate []string) *Cleaner {
	if boilerplate == nil {
		boilerplate = DefaultBoilerplate
	}
	return &Cleaner{boilerplate: boilerplate}
}

// Clean converts raw HTML/text into plain listing copy of at most 500
// characters. Bullet lists are preferred over paragraph text because
// they carry more signal per character.
func (c *Cleaner) Clean(raw string) string {
	if len(raw) < 10 {
		return raw
	}

	// Bullet extraction first: keep <li> fragments of useful length.
	var bullets []string
	for _, m := range bulletRe.FindAllStringSubmatch(raw, -1) {
		frag := strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
		if len(frag) > 10 && len(frag) < 300 {
			bullets = append(bullets, frag)
		}
	}
	if len(bullets) >= 2 {
		if len(bullets) > 6 {
			bullets = bullets[:6]
		}
		return truncate(strings.Join(bullets, " | "))
	}

	text := tagRe.ReplaceAllString(raw, " ")
	text = entityReplacer.Replace(text)
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))

	// Cut trailing boilerplate blocks, but never the opening copy: a
	// phrase only counts when its first occurrence starts after
	// character 100.
	cut := -1
	lower := strings.ToLower(text)
	for _, phrase := range c.boilerplate {
		if idx := strings.Index(lower, phrase); idx > 100 && (cut == -1 || idx < cut) {
			cut = idx
		}
	}
	if cut > 0 {
		text = strings.TrimSpace(text[:cut])
	}

	return truncate(text)
}

func truncate(s string) string {
	if len(s) > maxDescriptionLen {
		return strings.TrimSpace(s[:maxDescriptionLen])
	}
	return s
}
