package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/domain/audit"
	"github.com/linskybing/scrumish/internal/repository/mock"
	"github.com/linskybing/scrumish/pkg/types"
	"github.com/linskybing/scrumish/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDParam(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, err := utils.ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = utils.ParseIDParam(c, "id")
	assert.Error(t, err)
}

func TestParseQueryParams(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/issues?assignee=7", nil)

	v, err := utils.ParseOptionalQueryUint(c, "assignee")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint(7), *v)

	v, err = utils.ParseOptionalQueryUint(c, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = utils.ParseQueryUintParam(c, "missing")
	assert.ErrorIs(t, err, utils.ErrEmptyParameter)
}

func TestClaimsHelpers(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := utils.GetUserIDFromContext(c)
	assert.ErrorIs(t, err, utils.ErrNoClaims)

	c.Set("claims", &types.Claims{UserID: 3, Username: "zoe", IsAdmin: true})
	uid, err := utils.GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(3), uid)

	name, err := utils.GetUserNameFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "zoe", name)
}

func TestLogAuditMarshalsSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditRepo := mock.NewMockAuditRepo(ctrl)

	auditRepo.EXPECT().CreateAuditLog(gomock.Any()).DoAndReturn(func(l *audit.AuditLog) error {
		assert.Equal(t, uint(5), l.UserID)
		assert.Equal(t, "update", l.Action)
		assert.Equal(t, "project", l.ResourceType)

		var before map[string]string
		require.NoError(t, json.Unmarshal(l.OldData, &before))
		assert.Equal(t, "old", before["name"])
		assert.Nil(t, []byte(l.NewData))
		return nil
	})

	err := utils.LogAudit(5, "127.0.0.1", "test", "update", "project", "9",
		map[string]string{"name": "old"}, nil, "renamed", auditRepo)
	require.NoError(t, err)
}
