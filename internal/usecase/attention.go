package usecase

import (
	"regexp"
	"strings"

	"github.com/LavaJover/cognit-service/internal/domain"
)

// EvaluateAttention decides whether description satisfies the attention
// check. A nil check means the image is not an attention check, in which case
// passed is nil.
//
// Strict checks require the expected term as a whole word so that short terms
// such as "cat" are not satisfied by "category"; other checks accept a
// substring.
func EvaluateAttention(check *domain.AttentionCheck, description string) (isAttention bool, passed *bool) {
	if check == nil || !check.IsActive {
		return false, nil
	}

	result := matchesExpectedTerm(check.ExpectedTerm, check.Strict, description)
	return true, &result
}

func matchesExpectedTerm(expected string, strict bool, description string) bool {
	term := strings.ToLower(strings.TrimSpace(expected))
	if term == "" {
		return false
	}
	text := strings.ToLower(description)

	if !strict {
		return strings.Contains(text, term)
	}

	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}
