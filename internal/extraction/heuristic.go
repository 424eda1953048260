package extraction

import (
	"regexp"
	"strings"
)

// Heuristic runs all four pattern-based field extractors over normalized
// text. Fully deterministic, no external calls. A field with no acceptable
// match is returned as empty string.
func Heuristic(text string) ExtractionResult {
	return ExtractionResult{
		Name:  ExtractName(text),
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
		Role:  ExtractRole(text),
	}
}

// ExtractName finds a candidate name in resume text.
func ExtractName(text string) string { return firstMatch(text, nameRules) }

// ExtractEmail finds a candidate email address, lowercased.
func ExtractEmail(text string) string { return firstMatch(text, emailRules) }

// ExtractPhone finds a phone number by shape alone. Also used by the
// reconciler to corroborate model-proposed phone values.
func ExtractPhone(text string) string { return firstMatch(text, phoneRules) }

// ExtractRole finds a candidate job title or role.
func ExtractRole(text string) string { return firstMatch(text, roleRules) }

// --- Name ---

var nameRules = []rule{
	// Name on the first line of the document
	{pattern: regexp.MustCompile(`^([A-Z][a-z'-]+[ \t]+[A-Z][a-z'-]+(?:[ \t]+[A-Z][a-z'-]+)?)`), group: 1, accept: acceptName},
	// Explicit label
	{pattern: regexp.MustCompile(`(?i)(?:Name|Full Name|Candidate Name):\s*((?-i:[A-Z][a-z'-]+\s+[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?))`), group: 1, accept: acceptName},
	// Name-shaped tokens followed by a line break or contact vocabulary
	{pattern: regexp.MustCompile(`\b([A-Z][a-z'-]+\s+[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?)\s*(?:\n|\r|Email|Phone|Contact|@|$)`), group: 1, accept: acceptName},
	// Signature after a closing salutation
	{pattern: regexp.MustCompile(`(?i)(?:Best regards|Sincerely|Regards),\s*\n*((?-i:[A-Z][a-z'-]+\s+[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?))`), group: 1, accept: acceptName},
	// Name after a contact/about label
	{pattern: regexp.MustCompile(`(?i)(?:Contact|About Me):\s*\n*((?-i:[A-Z][a-z'-]+\s+[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?))`), group: 1, accept: acceptName},
}

// placeholderNames are throwaway names that pattern matching must never
// report as a real candidate.
var placeholderNames = map[string]bool{
	"john doe":    true,
	"jane doe":    true,
	"john smith":  true,
	"jane smith":  true,
	"jaden smith": true,
}

var (
	sectionVocabRe = regexp.MustCompile(`(?i)\b(resume|cv|curriculum|vitae|application|profile|contact|information|summary|objective|experience|education|skills|projects|certifications|awards|interests|references|linkedin|github|portfolio)\b`)
	hasUppercaseRe = regexp.MustCompile(`[A-Z]`)
	hasLowercaseRe = regexp.MustCompile(`[a-z]`)
)

func acceptName(name string) bool {
	if placeholderNames[strings.ToLower(name)] {
		return false
	}
	if sectionVocabRe.MatchString(name) {
		return false
	}
	if len(name) <= 3 || len(name) >= 50 {
		return false
	}
	return hasUppercaseRe.MatchString(name) && hasLowercaseRe.MatchString(name)
}

// --- Email ---

var emailRules = []rule{
	// Generic local@domain.tld
	{pattern: regexp.MustCompile(`\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`), group: 1, clean: strings.ToLower, accept: acceptEmail},
	// Anchored to common public providers
	{pattern: regexp.MustCompile(`(?i)\b([a-zA-Z0-9._%+-]+@(?:gmail|yahoo|outlook|hotmail|icloud|protonmail|company|org)\.[a-zA-Z]{2,})\b`), group: 1, clean: strings.ToLower, accept: acceptEmail},
	// Labeled form
	{pattern: regexp.MustCompile(`(?i)(?:Email|E-mail|Mail):\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`), group: 1, clean: strings.ToLower, accept: acceptEmail},
}

var placeholderEmails = map[string]bool{
	"example@email.com": true,
	"test@email.com":    true,
	"sample@email.com":  true,
	"user@email.com":    true,
	"admin@email.com":   true,
	"contact@email.com": true,
	"info@email.com":    true,
	"hello@email.com":   true,
	"world@email.com":   true,
}

var emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func acceptEmail(email string) bool {
	if placeholderEmails[email] {
		return false
	}
	if strings.Contains(email, "example") || strings.Contains(email, "test") || strings.Contains(email, "sample") {
		return false
	}
	if len(email) <= 5 {
		return false
	}
	return emailShapeRe.MatchString(email)
}

// --- Phone ---

// Phone is matched on shape alone; the first structural match wins.
var phoneRules = []rule{
	{pattern: regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]?\d{4}`)},
	{pattern: regexp.MustCompile(`\d{3}[-\s]?\d{3}[-\s]?\d{4}`)},
	{pattern: regexp.MustCompile(`\+?\d{1,3}[-\s]?\d{3}[-\s]?\d{3}[-\s]?\d{4}`)},
	{pattern: regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`)},
}

// --- Role ---

var roleRules = []rule{
	// Summary/objective label on the same line
	{pattern: regexp.MustCompile(`(?i)(?:Professional Summary|Summary|Objective|Career Objective|Profile|About Me):\s*([^\n\r]+)`), group: 1, clean: cleanRole, accept: acceptRole},
	// Short line immediately following a name-shaped line
	{pattern: regexp.MustCompile(`(?m)^[A-Z][a-z'-]+(?:[ \t]+[A-Z][a-z'-]+)+[ \t]*[\n\r]+[ \t]*([^\n\r]{5,50})`), group: 1, clean: cleanRole, accept: acceptRole},
	// First entry under an experience heading
	{pattern: regexp.MustCompile(`(?i)(?:Work Experience|Experience|Employment History|Professional Experience):[^\n]*[\n\r]+\s*([^\n\r]+?)(?:\s*[\n\r]|\s*at|\s*with|\s*for)`), group: 1, clean: cleanRole, accept: acceptRole},
	// Current position marker
	{pattern: regexp.MustCompile(`(?i)(?:Current|Present|Recent)[^\n]*[\n\r]+\s*([^\n\r]{5,50}?)(?:\s*[\n\r]|\s*at|\s*with|\s*for)`), group: 1, clean: cleanRole, accept: acceptRole},
	// Closed vocabulary of common titles
	{pattern: regexp.MustCompile(`(?i)\b(Software Engineer|Senior Software Engineer|Full Stack Developer|Frontend Developer|Backend Developer|Web Developer|Mobile Developer|iOS Developer|Android Developer|Data Scientist|Machine Learning Engineer|DevOps Engineer|System Administrator|Network Engineer|Security Engineer|QA Engineer|Quality Assurance Engineer|Product Manager|Project Manager|Business Analyst|UX Designer|UI Designer|Graphic Designer|Marketing Manager|Sales Manager|HR Manager|Operations Manager|Finance Manager|Account Manager|Customer Success Manager|Technical Lead|Team Lead|Architect|Consultant|Analyst|Specialist|Coordinator|Associate|Assistant|Intern|React Developer|Node\.js Developer|JavaScript Developer|Python Developer|Java Developer|\.NET Developer|Frontend Engineer|Backend Engineer|Full Stack Engineer)\b`), group: 1, clean: cleanRole, accept: acceptRole},
	// Free text preceding an organization indicator
	{pattern: regexp.MustCompile(`(?i)([^\n\r]{5,50})\s*(?:at|with|for)\s+[A-Z][a-zA-Z\s]+`), group: 1, clean: cleanRole, accept: acceptRole},
}

var (
	roleFillerPrefixRe = regexp.MustCompile(`(?i)^(?:I am a|As a|Working as|Position:|Title:|Role:|Current Role:|Job Title:)\s+`)
	roleOrgSuffixRe    = regexp.MustCompile(`(?i)\s*(?:with|at|for|in)\s+[a-zA-Z\s&]+.*$`)
	rolePipeSuffixRe   = regexp.MustCompile(`\s*\|.*$`)
	roleBulletSuffixRe = regexp.MustCompile(`\s*•.*$`)
	roleDashSuffixRe   = regexp.MustCompile(`\s*-.*$`)
	genericRoleRe      = regexp.MustCompile(`(?i)^(?:resume|cv|contact|email|phone|address|summary|objective|experience|education|skills|projects|certifications|awards|interests|references)$`)
	hasLetterRe        = regexp.MustCompile(`[a-zA-Z]`)
)

// cleanRole strips leading filler and trailing separators from a role match.
func cleanRole(role string) string {
	role = roleFillerPrefixRe.ReplaceAllString(role, "")
	role = roleOrgSuffixRe.ReplaceAllString(role, "")
	role = rolePipeSuffixRe.ReplaceAllString(role, "")
	role = roleBulletSuffixRe.ReplaceAllString(role, "")
	role = roleDashSuffixRe.ReplaceAllString(role, "")
	return strings.TrimSpace(role)
}

func acceptRole(role string) bool {
	if len(role) <= 3 || len(role) >= 60 {
		return false
	}
	if !hasLetterRe.MatchString(role) {
		return false
	}
	return !genericRoleRe.MatchString(role)
}
