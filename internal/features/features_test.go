package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleReport = `During my internship I developed an autonomous navigation stack in Python.
The perception module used OpenCV and a PostgreSQL database for logging.
I learned that sensor calibration dominates localization accuracy!
We built a REST API for telemetry. Later I discovered that caching halved latency.
Was it worth it? Yes.
I also realized that integration tests catch most regressions.
Finally I observed that documentation pays for itself.`

func TestExtract_Skills(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract(sampleReport)

	assert.Contains(t, feats.Skills, "python")
	assert.Contains(t, feats.Skills, "opencv")
	assert.NotContains(t, feats.Skills, "docker")
}

func TestExtract_Technologies(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract(sampleReport)

	assert.Contains(t, feats.Technologies, "api")
	assert.Contains(t, feats.Technologies, "postgresql")
	// "sql" matches inside "postgresql": substring matching has no word
	// boundaries, and that behavior is intentional
	assert.Contains(t, feats.Technologies, "sql")
	assert.Contains(t, feats.Technologies, "database")
}

func TestExtract_SubstringMatchingHasNoWordBoundaries(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract("I write a lot of JavaScript at work.")

	// "java" matches inside "javascript"
	assert.Contains(t, feats.Skills, "java")
	assert.Contains(t, feats.Skills, "javascript")
}

func TestExtract_ProjectMentionsKeepOrderAndCap(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	text := "I developed A. I built B. I created C. I implemented D. I designed E. I developed F."
	feats := ex.Extract(text)

	assert.Len(t, feats.ProjectMentions, 5)
	assert.Equal(t, "I developed A", feats.ProjectMentions[0])
	assert.Equal(t, "I designed E", feats.ProjectMentions[4])
}

func TestExtract_InsightsCappedAtThree(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract(sampleReport)

	assert.Len(t, feats.Insights, 3)
	assert.Equal(t, "I learned that sensor calibration dominates localization accuracy", feats.Insights[0])
}

func TestExtract_SummaryTakesFirstThreeNonTrivialSentences(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract("Tiny. This sentence is long enough. So is this second one! And a third sentence here? A fourth never appears.")

	assert.Equal(t, "This sentence is long enough. So is this second one. And a third sentence here.", feats.Summary)
}

func TestExtract_EmptyInput(t *testing.T) {
	ex := NewExtractor(DefaultConfig())

	feats := ex.Extract("")

	assert.Empty(t, feats.Skills)
	assert.Empty(t, feats.Technologies)
	assert.Empty(t, feats.ProjectMentions)
	assert.Empty(t, feats.Insights)
	assert.Empty(t, feats.Summary)
}

func TestExtract_CustomKeywordConfig(t *testing.T) {
	ex := NewExtractor(Config{
		SkillKeywords:   []string{"golang"},
		TechKeywords:    []string{"grpc"},
		ProjectKeywords: []string{"shipped"},
		InsightKeywords: []string{"noticed"},
	})

	feats := ex.Extract("We shipped a Golang service speaking gRPC. I noticed the latency dropped.")

	assert.Equal(t, []string{"golang"}, feats.Skills)
	assert.Equal(t, []string{"grpc"}, feats.Technologies)
	assert.Equal(t, []string{"We shipped a Golang service speaking gRPC"}, feats.ProjectMentions)
	assert.Equal(t, []string{"I noticed the latency dropped"}, feats.Insights)
}
