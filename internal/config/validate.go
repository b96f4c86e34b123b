package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims/dedupes the keyword and location lists and
// collects every problem it finds instead of bailing at the first one.
// Pattern compilation is checked separately when the policy is built.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.RequiredKeywords = trimList(out.RequiredKeywords)
	out.ExcludeKeywords = trimList(out.ExcludeKeywords)
	out.Locations.Preferred = trimList(out.Locations.Preferred)
	out.Locations.Exclude = trimList(out.Locations.Exclude)
	out.TitlePatterns.HighPriority = trimList(out.TitlePatterns.HighPriority)
	out.TitlePatterns.MediumPriority = trimList(out.TitlePatterns.MediumPriority)

	// ---- Validation rules ----

	if len(out.Companies) == 0 {
		res.addErr("companies is empty: nothing to scrape")
	}
	for i, c := range out.Companies {
		if strings.TrimSpace(c.Name) == "" {
			res.addErr("companies[%d]: name is required", i)
		}
		if c.GreenhouseID == "" && c.LeverID == "" && c.CareersURL == "" {
			res.addErr("companies[%d] (%s): needs greenhouse_id, lever_id, or careers_url", i, c.Name)
		}
		if c.CareersURL != "" && !strings.HasPrefix(c.CareersURL, "http") {
			res.addErr("companies[%d] (%s): careers_url must be an http(s) URL", i, c.Name)
		}
	}

	if len(out.RequiredKeywords) == 0 && len(out.TitlePatterns.HighPriority) == 0 {
		res.addWarn("no required_keywords and no high_priority patterns; every posting will be disqualified")
	}

	// a keyword that is both required and excluded can never score
	excl := map[string]bool{}
	for _, k := range out.ExcludeKeywords {
		excl[strings.ToLower(k)] = true
	}
	for _, k := range out.RequiredKeywords {
		if excl[strings.ToLower(k)] {
			res.addWarn("keyword appears in both required and exclude lists: %q", k)
		}
	}

	// smtp block is optional, but half-filled is a config mistake
	if out.SMTP.Host != "" {
		if out.SMTP.Port == 0 {
			res.addErr("smtp.port is required when smtp.host is set")
		}
		if strings.TrimSpace(out.SMTP.Username) == "" {
			res.addErr("smtp.username is required when smtp.host is set")
		}
		if strings.TrimSpace(out.SMTP.From) == "" {
			res.addErr("smtp.from is required when smtp.host is set")
		}
	}
	if out.Notification.SendEmpty && strings.TrimSpace(out.Notification.Email) == "" {
		res.addErr("notification.email is required when notification.send_empty is true")
	}

	return out, res
}
