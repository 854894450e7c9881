// Package template picks and renders the introduction request a user sends
// to a mutual connection. Which wording is used depends only on how well the
// user rated their connection with the mutual.
package template

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var files embed.FS

type Band string

const (
	BandStrong Band = "strong" // casual, asks the friend to forward a ready made note
	BandMedium Band = "medium" // direct intro request with a softer hedge
	BandWeak   Band = "weak"   // most tentative, acknowledges the imposition
)

var parsed = template.Must(template.New("intro").
	Option("missingkey=error").
	ParseFS(files, "templates/*.tmpl"))

// Context is what gets interpolated. Any blank field is replaced by a neutral
// fallback so the rendered text never has holes in it.
type Context struct {
	FriendName      string
	JobTitle        string
	JobURL          string // optional, omitted from the text when blank
	TargetCompany   string
	EmployeeName    string
	UserName        string
	UserLinkedInURL string
	CalendarURL     string
}

// BandFor maps a strength rating to a band. Every integer has an answer:
// 4 and up is strong, 3 is medium, anything lower (unrated 0, negatives) weak.
func BandFor(strength int) Band {
	switch {
	case strength >= 4:
		return BandStrong
	case strength >= 3:
		return BandMedium
	default:
		return BandWeak
	}
}

// Select renders the template for the given strength.
func Select(strength int, ctx Context) (Band, string) {
	band := BandFor(strength)
	return band, Render(band, ctx)
}

// Render renders a specific band. Unknown bands render as weak.
func Render(band Band, ctx Context) string {
	name := string(band) + ".tmpl"
	if parsed.Lookup(name) == nil {
		name = string(BandWeak) + ".tmpl"
	}

	var b strings.Builder
	if err := parsed.ExecuteTemplate(&b, name, ctx.withFallbacks()); err != nil {
		// Only possible if an embedded file references a field Context does
		// not have, which the tests catch.
		panic("template: " + err.Error())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c Context) withFallbacks() Context {
	c.FriendName = orDefault(c.FriendName, "there")
	c.JobTitle = orDefault(c.JobTitle, "open")
	c.TargetCompany = orDefault(c.TargetCompany, "the company")
	c.EmployeeName = orDefault(c.EmployeeName, "your contact")
	c.UserName = orDefault(c.UserName, "a fellow job seeker")
	c.UserLinkedInURL = orDefault(c.UserLinkedInURL, "LinkedIn profile on request")
	c.CalendarURL = orDefault(c.CalendarURL, "on request")
	c.JobURL = strings.TrimSpace(c.JobURL)
	return c
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
