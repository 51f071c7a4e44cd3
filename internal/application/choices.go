package application

import (
	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/qa"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/internal/domain/story"
)

// Catalog maps each enumerated field to its code to label pairs.
type Catalog map[string]map[string]string

var catalogSources = map[string][]shared.Choice{
	"project_types":            project.TypeChoices,
	"project_categories":       project.CategoryChoices,
	"statuses":                 shared.StatusChoices,
	"priorities":               shared.PriorityChoices,
	"roles":                    membership.RoleChoices,
	"issue_types":              issue.TypeChoices,
	"sprint_statuses":          sprint.StatusChoices,
	"epic_statuses":            epic.StatusChoices,
	"criteria_types":           story.CriteriaTypeChoices,
	"execution_types":          qa.ExecutionTypeChoices,
	"execution_statuses":       qa.ExecutionStatusChoices,
	"test_levels":              qa.TestLevelChoices,
	"test_types":               qa.TestTypeChoices,
	"acceptance_testing_types": qa.AcceptanceTestingTypeChoices,
}

func Choices() Catalog {
	out := make(Catalog, len(catalogSources))
	for name, choices := range catalogSources {
		m := make(map[string]string, len(choices))
		for _, c := range choices {
			m[c.Code] = c.Label
		}
		out[name] = m
	}
	return out
}
