package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences_Terminators(t *testing.T) {
	sentences := SplitSentences("First one. Second one! Third one? Fourth")

	assert.Equal(t, []string{"First one", "Second one", "Third one", "Fourth"}, sentences)
}

func TestSplitSentences_ConsecutiveTerminators(t *testing.T) {
	sentences := SplitSentences("Really?! Yes... definitely.")

	assert.Equal(t, []string{"Really", "Yes", "definitely"}, sentences)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("..."))
	assert.Empty(t, SplitSentences("   "))
}
