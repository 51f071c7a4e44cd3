package application

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrEmailTaken          = errors.New("email already registered")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	_, err = s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		FullName: deref(input.FullName),
		IsActive: true,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrUsernameTaken
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil || !usr.IsActive {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.IsAdmin, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, notFound(err, ErrUserNotFound)
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

// Profile returns the caller together with the number of projects they can see.
func (s *UserService) Profile(c *gin.Context) (user.Profile, error) {
	uid, err := callerID(c)
	if err != nil {
		return user.Profile{}, err
	}
	usr, err := s.FindUserByID(uid)
	if err != nil {
		return user.Profile{}, err
	}
	projects, err := s.Repos.Project.ListVisibleProjects(uid)
	if err != nil {
		return user.Profile{}, err
	}
	return user.Profile{UserDTO: usr.ToDTO(), ProjectCount: len(projects)}, nil
}

func (s *UserService) UpdateProfile(c *gin.Context, input user.UpdateUserInput) (user.User, error) {
	uid, err := callerID(c)
	if err != nil {
		return user.User{}, err
	}
	usr, err := s.FindUserByID(uid)
	if err != nil {
		return user.User{}, err
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	if input.FullName != nil {
		usr.FullName = *input.FullName
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// EnsureAdmin creates the reserved admin account on first start when an
// admin password is configured.
func (s *UserService) EnsureAdmin() error {
	if config.AdminPassword == "" {
		return nil
	}
	_, err := s.Repos.User.GetUserByUsername(config.ReservedAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	admin := user.User{
		Username: config.ReservedAdminUsername,
		Email:    config.AdminEmail,
		Password: string(hashed),
		IsAdmin:  true,
		IsActive: true,
	}
	if err := s.Repos.User.SaveUser(&admin); err != nil {
		return err
	}
	log.WithField("username", admin.Username).Info("Reserved admin user created")
	return nil
}
