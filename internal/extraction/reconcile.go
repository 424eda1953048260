package extraction

import (
	"regexp"
	"strings"
)

// Merge combines heuristic and model outputs per field. The heuristic value
// wins whenever non-empty: it is traceable to the source text by
// construction, so preferring it minimizes hallucination risk. The model is
// only a gap-filler.
func Merge(heuristic, model ExtractionResult) ExtractionResult {
	pick := func(h, m string) string {
		if h != "" {
			return h
		}
		return m
	}
	return ExtractionResult{
		Name:  pick(heuristic.Name, model.Name),
		Email: pick(heuristic.Email, model.Email),
		Phone: pick(heuristic.Phone, model.Phone),
		Role:  pick(heuristic.Role, model.Role),
	}
}

// Reconcile merges the two extractor outputs and grounds every field against
// the normalized source text. Fields that cannot be grounded are forced back
// to empty. This applies to heuristic values too, catching the extractor's
// own pattern-matching mistakes.
func Reconcile(heuristic, model ExtractionResult, text string) Result {
	merged := Merge(heuristic, model)
	textLower := strings.ToLower(text)

	profile := Profile{
		Name:  nameValidator.validate(merged.Name, textLower),
		Email: emailValidator.validate(merged.Email, textLower),
		Phone: validatePhone(merged.Phone, text),
		Role:  roleValidator.validate(merged.Role, textLower),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", profile.Name},
		{"email", profile.Email},
		{"role", profile.Role},
		{"phone", profile.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	// Phone alone missing never forces user input
	needsInput := profile.Name == "" || profile.Email == "" || profile.Role == ""

	return Result{
		Profile:        profile,
		NeedsUserInput: needsInput,
		MissingFields:  missing,
	}
}

// groundedValidator implements the shared validation shape: reject values in
// a known-placeholder set, then require textual grounding in the source.
type groundedValidator struct {
	placeholders []*regexp.Regexp
	grounded     func(value, textLower string) bool
}

func (v groundedValidator) validate(value, textLower string) string {
	if value == "" {
		return ""
	}
	for _, p := range v.placeholders {
		if p.MatchString(value) {
			return ""
		}
	}
	if !v.grounded(value, textLower) {
		return ""
	}
	return value
}

// nameValidator rejects common first+last combinations that models default
// to, then requires at least one token of the name to appear in the text.
var nameValidator = groundedValidator{
	placeholders: []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(john|jane)\s+(doe|smith)$`),
		regexp.MustCompile(`(?i)^(jaden|alex|sam|taylor|jordan|casey|morgan|riley|avery|quinn)\s+(doe|smith|johnson|williams|brown|jones|garcia|miller|davis)$`),
		regexp.MustCompile(`(?i)^(candidate|applicant|user|test|example|sample)\s+(name|user|person)$`),
		regexp.MustCompile(`(?i)^(mr|mrs|ms|dr)\s+(doe|smith|test|example)$`),
	},
	grounded: func(name, textLower string) bool {
		for _, token := range strings.Fields(name) {
			if strings.Contains(textLower, strings.ToLower(token)) {
				return true
			}
		}
		return false
	},
}

var publicProviderRe = regexp.MustCompile(`(?i)@(gmail|yahoo|outlook|hotmail)\.com$`)

// emailValidator rejects placeholder addresses outright. Public-provider
// addresses are cheap to hallucinate plausibly, so they additionally require
// a verbatim appearance in the text. This is a deliberate conservative bias:
// a Gmail address in a partially decoded resume can be rejected even when
// legitimate.
var emailValidator = groundedValidator{
	placeholders: []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(example|test|sample|user|admin|contact|info|hello|world|candidate|applicant)@`),
		regexp.MustCompile(`(?i)@(example|test|sample|fake|dummy|temp|placeholder)\.`),
	},
	grounded: func(email, textLower string) bool {
		if !emailShapeRe.MatchString(email) {
			return false
		}
		if publicProviderRe.MatchString(email) {
			return strings.Contains(textLower, strings.ToLower(email))
		}
		return true
	},
}

// validatePhone accepts a phone value only when the heuristic shape extractor
// independently re-derives the same value from the source text. A phone
// number never survives through the model alone.
func validatePhone(phone, text string) string {
	if phone == "" {
		return ""
	}
	if ExtractPhone(text) != phone {
		return ""
	}
	return phone
}

// stopwords excluded from role grounding checks.
var roleStopwords = map[string]bool{
	"the": true, "and": true, "or": true, "of": true, "in": true, "at": true,
	"to": true, "for": true, "with": true, "by": true, "from": true, "on": true,
	"as": true, "is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"can": true, "this": true, "that": true, "these": true, "those": true,
	"a": true, "an": true,
}

// roleValidator rejects placeholder roles, then requires at least one
// non-stopword token longer than 2 characters to appear in the text.
var roleValidator = groundedValidator{
	placeholders: []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(example|test|sample|fake|dummy|temp|placeholder)\s+(role|position|title|job)$`),
		regexp.MustCompile(`(?i)^(candidate|applicant|user|employee|worker|staff|person)$`),
		regexp.MustCompile(`(?i)^(position|title|role|job|occupation|profession)$`),
		regexp.MustCompile(`(?i)^(unknown|not specified|to be determined|tbd)$`),
	},
	grounded: func(role, textLower string) bool {
		for _, token := range strings.Fields(role) {
			lower := strings.ToLower(token)
			if len(lower) > 2 && !roleStopwords[lower] && strings.Contains(textLower, lower) {
				return true
			}
		}
		return false
	},
}
