package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"cityguide/internal/authz"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

// Session describes the caller behind a request token.
type Session struct {
	Email      string
	IsLoggedIn bool
	Role       db_models.Role
}

// Authorizer checks the actor carried by ctx against the access policy.
type Authorizer interface {
	Require(ctx context.Context, object, action string) error
}

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	CheckSession(ctx context.Context, userID uint) (Session, error)
	GetUserById(ctx context.Context, id uint, relations ...string) (*db_models.User, error)
	GetUserByEmail(ctx context.Context, email string, relations ...string) (*db_models.User, error)
	IsEmailUnique(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, id uint, req request_models.UpdateUserRequest) (string, error)
	DeleteUser(ctx context.Context, id uint) (string, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type UserService struct {
	userRepo   repositories.UserRepository
	cityRepo   repositories.CityRepository
	tokens     *utils.TokenIssuer
	authorizer Authorizer
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	cityRepo repositories.CityRepository,
	tokens *utils.TokenIssuer,
	authorizer Authorizer,
	bcryptCost int,
	log *zap.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:   userRepo,
		cityRepo:   cityRepo,
		tokens:     tokens,
		authorizer: authorizer,
		bcryptCost: bcryptCost,
		log:        log.Named("user"),
	}
}

// Register always creates a USER. Elevated roles are granted through
// UpdateUser by an ADMIN or by the bootstrap admin seed.
func (u *UserService) Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.User, error) {
	return u.createUser(ctx, req, db_models.RoleUser)
}

func (u *UserService) createUser(ctx context.Context, req request_models.RegisterRequest, role db_models.Role) (*db_models.User, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := u.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}
	if req.CityID != nil {
		if err := u.ensureCity(ctx, *req.CityID); err != nil {
			return nil, err
		}
	}

	hashed, err := utils.HashPassword(req.Password, u.bcryptCost)
	if err != nil {
		u.log.Error("hash password", zap.Error(err))
		return nil, utils.Internal(err)
	}

	user := &db_models.User{
		Email:          req.Email,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		HashedPassword: hashed,
		Role:           role,
		CityID:         req.CityID,
	}
	if err := u.userRepo.InsertTx(ctx, user); err != nil {
		return nil, storageError(u.log, "register user", err, "Email already in use.")
	}

	u.log.Info("user registered", zap.Uint("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (u *UserService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	if err := validateRequest(req); err != nil {
		return "", err
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", storageError(u.log, "find user", err, "")
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.HashedPassword, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := u.tokens.CreateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Error("sign token", zap.Error(err))
		return "", utils.Internal(err)
	}
	return token, nil
}

// CheckSession reports the user behind a verified token. A token whose user
// no longer exists is treated as logged out.
func (u *UserService) CheckSession(ctx context.Context, userID uint) (Session, error) {
	if userID == 0 {
		return Session{}, nil
	}
	user, err := u.userRepo.FindById(ctx, userID)
	if err != nil {
		return Session{}, storageError(u.log, "find user", err, "")
	}
	if user == nil {
		return Session{}, nil
	}
	return Session{Email: user.Email, IsLoggedIn: true, Role: user.Role}, nil
}

func (u *UserService) GetUserById(ctx context.Context, id uint, relations ...string) (*db_models.User, error) {
	user, err := u.userRepo.FindById(ctx, id, defaultRelations(relations, "City", "Ratings", "Ratings.POI")...)
	if err != nil {
		return nil, storageError(u.log, "get user", err, "")
	}
	if user == nil {
		return nil, utils.NotFound("User with ID %d not found", id)
	}
	return user, nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string, relations ...string) (*db_models.User, error) {
	email = utils.NormalizeEmail(email)
	user, err := u.userRepo.FindByEmail(ctx, email, defaultRelations(relations, "City")...)
	if err != nil {
		return nil, storageError(u.log, "get user by email", err, "")
	}
	if user == nil {
		return nil, utils.NotFound("User with email %s not found", email)
	}
	return user, nil
}

func (u *UserService) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	taken, err := u.userRepo.EmailExists(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return false, storageError(u.log, "check email", err, "")
	}
	return !taken, nil
}

func (u *UserService) UpdateUser(ctx context.Context, id uint, req request_models.UpdateUserRequest) (string, error) {
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := validateRequest(req); err != nil {
		return "", err
	}
	if req.Role != nil {
		if err := u.authorizer.Require(ctx, authz.ObjectUser, authz.ActionUpdateRole); err != nil {
			return "", err
		}
	}

	user, err := u.userRepo.FindById(ctx, id)
	if err != nil {
		return "", storageError(u.log, "get user", err, "")
	}
	if user == nil {
		return "", utils.NotFound("User with ID %d not found", id)
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := u.ensureEmailFree(ctx, *req.Email); err != nil {
			return "", err
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, u.bcryptCost)
		if err != nil {
			u.log.Error("hash password", zap.Error(err))
			return "", utils.Internal(err)
		}
		user.HashedPassword = hashed
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.CityID != nil {
		if err := u.ensureCity(ctx, *req.CityID); err != nil {
			return "", err
		}
		user.CityID = req.CityID
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return "", storageError(u.log, "update user", err, "Email already in use.")
	}
	return "User updated", nil
}

func (u *UserService) DeleteUser(ctx context.Context, id uint) (string, error) {
	res, err := u.userRepo.DeleteCascade(ctx, id)
	if err != nil {
		return "", storageError(u.log, "delete user", err, "")
	}
	if res.Users == 0 {
		return "", utils.NotFound("User with ID %d not found", id)
	}

	u.log.Info("user deleted", zap.Uint("id", id), zap.Int64("ratings", res.Ratings))
	return "The User has been deleted", nil
}

// EnsureAdmin seeds the bootstrap ADMIN account. An existing account with the
// same email is left as is.
func (u *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return storageError(u.log, "find admin", err, "")
	}
	if existing != nil {
		if existing.Role != db_models.RoleAdmin {
			u.log.Warn("bootstrap admin email belongs to a non-admin account", zap.String("email", email))
		}
		return nil
	}

	_, err = u.createUser(ctx, request_models.RegisterRequest{
		Email:     email,
		FirstName: "Admin",
		LastName:  "Admin",
		Password:  password,
	}, db_models.RoleAdmin)
	if err != nil {
		return err
	}
	u.log.Info("bootstrap admin created", zap.String("email", email))
	return nil
}

func (u *UserService) ensureEmailFree(ctx context.Context, email string) error {
	taken, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return storageError(u.log, "check email", err, "")
	}
	if taken {
		return utils.Conflict("Email already in use.")
	}
	return nil
}

func (u *UserService) ensureCity(ctx context.Context, id uint) error {
	city, err := u.cityRepo.FindByID(ctx, id)
	if err != nil {
		return storageError(u.log, "get city", err, "")
	}
	if city == nil {
		return utils.NotFound("City with ID %d not found", id)
	}
	return nil
}
