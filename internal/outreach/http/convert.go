package http

import (
	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

// Domain to wire conversions. The LinkedIn session marker and the password
// hash never leave through here.

func toUser(u domain.User) mutualsdk.User {
	return mutualsdk.User{
		ID:                u.ID,
		Username:          u.Username,
		Name:              u.Name,
		JobTitle:          u.JobTitle,
		PhotoURL:          u.PhotoURL,
		LinkedInURL:       u.LinkedInURL,
		LinkedInConnected: u.LinkedInConnected,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toPreferences(p domain.JobPreferences) mutualsdk.JobPreferences {
	return mutualsdk.JobPreferences{
		JobTitles:  nonNil(p.JobTitles),
		Locations:  nonNil(p.Locations),
		Industries: nonNil(p.Industries),
		UpdatedAt:  p.UpdatedAt,
	}
}

func toJob(j domain.Job) mutualsdk.Job {
	return mutualsdk.Job{
		ID:         j.ID,
		UserID:     j.UserID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		JobURL:     j.JobURL,
		PostedDate: j.PostedDate,
		LogoURL:    j.LogoURL,
		IsNew:      j.IsNew,
		CreatedAt:  j.CreatedAt,
	}
}

func toEmployee(e domain.Employee) mutualsdk.Employee {
	return mutualsdk.Employee{
		ID:          e.ID,
		JobID:       e.JobID,
		Name:        e.Name,
		Title:       e.Title,
		LinkedInURL: e.LinkedInURL,
		Department:  e.Department,
		CreatedAt:   e.CreatedAt,
	}
}

func toMutual(m domain.Mutual) mutualsdk.Mutual {
	return mutualsdk.Mutual{
		ID:                m.ID,
		UserID:            m.UserID,
		EmployeeID:        m.EmployeeID,
		Name:              m.Name,
		Title:             m.Title,
		Company:           m.Company,
		LinkedInURL:       m.LinkedInURL,
		ConnectedSince:    m.ConnectedSince,
		RatedStrength:     m.RatedStrength,
		ConnectionContext: m.ConnectionContext,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toMessage(m domain.Message) mutualsdk.Message {
	return mutualsdk.Message{
		ID:           m.ID,
		UserID:       m.UserID,
		MutualID:     m.MutualID,
		EmployeeID:   m.EmployeeID,
		JobID:        m.JobID,
		MessageText:  m.MessageText,
		Status:       string(m.Status),
		Outcome:      string(m.Outcome),
		SentDate:     m.SentDate,
		ResponseDate: m.ResponseDate,
		IntroDate:    m.IntroDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPreview(p service.TemplatePreview) mutualsdk.TemplatePreview {
	return mutualsdk.TemplatePreview{
		MutualID: p.MutualID,
		Strength: p.Strength,
		Band:     string(p.Band),
		Text:     p.Text,
	}
}

func toStats(s domain.Stats) mutualsdk.Stats {
	out := mutualsdk.Stats{
		JobsCount:              s.JobsCount,
		MutualsCount:           s.MutualsCount,
		MessagesSentCount:      s.MessagesSentCount,
		IntroductionsMadeCount: s.IntroductionsMadeCount,
		ResponsesCount:         s.ResponsesCount,
		InterviewsCount:        s.InterviewsCount,
		ResponseRate:           s.ResponseRate(),
		ByStatus:               make(map[string]int, len(s.ByStatus)),
		ByOutcome:              make(map[string]int, len(s.ByOutcome)),
	}
	for k, v := range s.ByStatus {
		out.ByStatus[string(k)] = v
	}
	for k, v := range s.ByOutcome {
		out.ByOutcome[string(k)] = v
	}
	return out
}

func toActivity(d domain.ActivityDay) mutualsdk.ActivityDay {
	return mutualsdk.ActivityDay{
		Date:      d.Date.Format("2006-01-02"),
		Sent:      d.Sent,
		Responses: d.Responses,
		Intros:    d.Intros,
	}
}

// mapSlice converts a list, always returning a non-nil slice so the JSON is
// [] rather than null.
func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
