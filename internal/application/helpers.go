package application

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
)

// notFound maps a missing row onto the caller's sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func callerID(c *gin.Context) (uint, error) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return uid, nil
}

// isAdmin reads the admin flag from the stored account rather than the
// token, so a revoked or deactivated admin loses access immediately.
func isAdmin(repos *repository.Repos, uid uint) (bool, error) {
	u, err := repos.User.GetUserByID(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin && u.IsActive, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// projectIssues loads ids and fails unless every one belongs to projectID.
func projectIssues(repos *repository.Repos, projectID uint, ids []uint) ([]issue.Issue, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	issues, err := repos.Issue.GetIssuesByIDs(projectID, ids)
	if err != nil {
		return nil, err
	}
	if len(issues) != len(ids) {
		return nil, shared.NewValidationError("issue_ids", "every issue must belong to this project")
	}
	return issues, nil
}
