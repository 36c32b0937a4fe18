package usecase

import (
	"testing"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAttention(t *testing.T) {
	tests := []struct {
		name        string
		check       *domain.AttentionCheck
		description string
		isAttention bool
		passed      bool
	}{
		{"no check", nil, "anything", false, false},
		{"inactive check", &domain.AttentionCheck{ExpectedTerm: "cat", IsActive: false}, "a cat", false, false},
		{"substring match", &domain.AttentionCheck{ExpectedTerm: "cat", IsActive: true}, "A CATegory of things", true, true},
		{"substring miss", &domain.AttentionCheck{ExpectedTerm: "cat", IsActive: true}, "a dog on a sofa", true, false},
		{"strict whole word", &domain.AttentionCheck{ExpectedTerm: "cat", Strict: true, IsActive: true}, "The Cat sat.", true, true},
		{"strict rejects partial word", &domain.AttentionCheck{ExpectedTerm: "cat", Strict: true, IsActive: true}, "a category", true, false},
		{"strict quotes regex characters", &domain.AttentionCheck{ExpectedTerm: "c.t", Strict: true, IsActive: true}, "a cat", true, false},
		{"expected term trimmed", &domain.AttentionCheck{ExpectedTerm: "  red ball ", IsActive: true}, "a Red Ball rolls", true, true},
		{"empty term never passes", &domain.AttentionCheck{ExpectedTerm: "   ", IsActive: true}, "anything", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isAttention, passed := EvaluateAttention(tt.check, tt.description)
			assert.Equal(t, tt.isAttention, isAttention)
			if !tt.isAttention {
				assert.Nil(t, passed)
				return
			}
			require.NotNil(t, passed)
			assert.Equal(t, tt.passed, *passed)
		})
	}
}
