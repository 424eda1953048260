package questions

import "strings"

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TopicPolicy constrains question content. A question must contain at least
// one allow-list substring and no deny-list substring. The fallback bank
// supplies pre-written questions per difficulty when the model produces too
// few usable ones. Immutable; loaded once.
type TopicPolicy struct {
	Allow    []string
	Deny     []string
	Fallback []Question
}

// Allowed reports whether question text passes the topic filter. Deny-list
// hits disqualify outright; otherwise at least one allow-list substring is
// required.
func (p TopicPolicy) Allowed(text string) bool {
	t := normalizeLower(text)
	for _, d := range p.Deny {
		if strings.Contains(t, d) {
			return false
		}
	}
	for _, a := range p.Allow {
		if strings.Contains(t, a) {
			return true
		}
	}
	return false
}

// DefaultPolicy returns the React/Node topic policy used for frontend
// interview sessions.
func DefaultPolicy() TopicPolicy {
	return TopicPolicy{
		Allow: []string{
			"react", "hook", "jsx", "component", "state", "context", "redux", "router", "vite", "next.js",
			"node", "express", "event loop", "async", "promise", "middleware", "jwt", "authentication",
			"authorization", "postgres", "mongodb", "orm", "prisma", "nest.js", "error", "logging",
			"stream", "cluster",
		},
		Deny: []string{
			"python", "java", "c#", "c++", "go ", "golang", "rust", "devops", "kubernetes", "docker",
			"ml", "machine learning", "data science", "android", "ios", "swift", "kotlin", "php",
			"laravel", "ruby", "rails", "hadoop", "spark", "scala", "angular", "vue", "svelte",
			"system design",
		},
		Fallback: []Question{
			{Text: "Explain how the useEffect hook differs from useLayoutEffect. When prefer each?", Difficulty: Easy},
			{Text: "What problems do React keys solve? Show a case that breaks without keys.", Difficulty: Easy},
			{Text: "Walk through Node.js event loop phases and microtasks vs macrotasks.", Difficulty: Medium},
			{Text: "Design Express middleware for request validation and error handling.", Difficulty: Medium},
			{Text: "Optimize a React list of 10k items: techniques and trade-offs.", Difficulty: Hard},
			{Text: "Scale a Node.js API under heavy load: clustering, workers, and bottlenecks.", Difficulty: Hard},
		},
	}
}
