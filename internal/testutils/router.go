package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/api/routes"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/invite"
	"github.com/linskybing/scrumish/pkg/mailer"
	"github.com/linskybing/scrumish/pkg/response"
	"github.com/linskybing/scrumish/pkg/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Outbox collects mail instead of delivering it.
type Outbox struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (o *Outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

func (o *Outbox) Messages() []mailer.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]mailer.Message(nil), o.messages...)
}

// Server is a fully routed API over a caller-provided database.
type Server struct {
	Router *gin.Engine
	DB     *gorm.DB
	Repos  *repository.Repos
	Outbox *Outbox
}

// SetupRouter wires the real routes over gormDB. store may be nil to run
// without object storage.
func SetupRouter(gormDB *gorm.DB, store storage.ObjectStore) *Server {
	gin.SetMode(gin.TestMode)
	if config.JwtSecret == "" {
		config.JwtSecret = "test-secret"
	}
	if config.TokenTTL == 0 {
		config.TokenTTL = time.Hour
	}
	middleware.Init()

	repos := repository.NewRepositories(gormDB)
	outbox := &Outbox{}
	signer := invite.NewSigner("test-invite-secret", "scrumish-test", time.Hour)
	svc := application.New(repos, store, signer, outbox)

	r := gin.New()
	routes.RegisterRoutes(r, svc, repos)
	return &Server{Router: r, DB: gormDB, Repos: repos, Outbox: outbox}
}

// Do sends a JSON request, authenticated when token is non-empty.
func (s *Server) Do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return s.serve(req, token)
}

// Upload sends a multipart request with one file part and plain fields.
func (s *Server) Upload(t *testing.T, method, path, token, field, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.serve(req, token)
}

func (s *Server) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// SignUp registers username through the API and returns its id and a login token.
func (s *Server) SignUp(t *testing.T, username string) (uint, string) {
	t.Helper()
	rec := s.Do(t, http.MethodPost, "/register", "", user.CreateUserInput{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.Do(t, http.MethodPost, "/login", "", user.LoginInput{Username: username, Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok response.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	return tok.UID, tok.Token
}

// Promote flags an existing user as site admin.
func (s *Server) Promote(t *testing.T, uid uint) {
	t.Helper()
	require.NoError(t, s.DB.Model(&user.User{}).Where("u_id = ?", uid).Update("is_admin", true).Error)
}

// Decode unmarshals a recorded JSON body.
func Decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
