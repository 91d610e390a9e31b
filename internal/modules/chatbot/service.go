package chatbot

import "strings"

type Service struct {
	rules []Rule
}

func NewService() *Service {
	return &Service{rules: defaultRules}
}

// NewServiceWithRules allows a custom rule table, used in tests.
func NewServiceWithRules(rules []Rule) *Service {
	return &Service{rules: rules}
}

// Reply lowercases and trims the message, then scans the rule table in
// order and answers with the first rule whose keyword appears anywhere
// in the message. Matching is substring-based, not whole-word, so short
// keywords also fire inside longer words; the rule order decides ties.
func (s *Service) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(msg, keyword) {
				return rule.Reply
			}
		}
	}

	return fallbackReply
}
