package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-analyzer/internal/types"
)

func completeResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Summary:    "Engineer",
		Skills:     []types.Skill{{Name: "Go"}},
		Experience: []types.ExperienceEntry{{Bullets: []string{"Did things"}}},
		Education:  []types.EducationEntry{{Degree: "BSc"}},
	}
}

func TestMissingSections_CompleteResume(t *testing.T) {
	assert.Empty(t, MissingSections(completeResume()))
}

func TestMissingSections_MissingEducation(t *testing.T) {
	resume := completeResume()
	resume.Education = nil

	assert.Equal(t, []string{"education"}, MissingSections(resume))
}

func TestMissingSections_BlankSummaryCountsAsMissing(t *testing.T) {
	resume := completeResume()
	resume.Summary = "   "

	assert.Equal(t, []string{"summary"}, MissingSections(resume))
}

func TestMissingSections_EmptyListCountsAsMissing(t *testing.T) {
	resume := completeResume()
	resume.Skills = []types.Skill{}

	assert.Equal(t, []string{"skills"}, MissingSections(resume))
}

func TestMissingSections_AllMissingInFixedOrder(t *testing.T) {
	missing := MissingSections(&types.ResumeDocument{})

	assert.Equal(t, []string{"summary", "skills", "experience", "education"}, missing)
}
