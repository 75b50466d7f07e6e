package graph

import (
	"context"

	"cityguide/internal/authz"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
)

type userInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	City      *float64
}

type userUpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	Role      *string
	City      *float64
}

type userLoginInput struct {
	Email    string
	Password string
}

type userResolver struct {
	r *Resolver
	u *db_models.User
}

func (r *Resolver) newUser(u *db_models.User) *userResolver {
	return &userResolver{r: r, u: u}
}

func (u *userResolver) ID() float64       { return fromID(u.u.ID) }
func (u *userResolver) Email() string     { return u.u.Email }
func (u *userResolver) FirstName() string { return u.u.FirstName }
func (u *userResolver) LastName() string  { return u.u.LastName }
func (u *userResolver) Role() string      { return string(u.u.Role) }

func (u *userResolver) City(ctx context.Context) (*cityResolver, error) {
	if u.u.CityID == nil {
		return nil, nil
	}
	if u.u.City == nil {
		city, err := u.r.cities.GetCityById(ctx, *u.u.CityID, "POIs")
		if err != nil {
			return nil, u.r.fail(ctx, "user.city", err)
		}
		u.u.City = city
	}
	return u.r.newCity(u.u.City), nil
}

func (u *userResolver) Ratings(ctx context.Context) ([]*ratingResolver, error) {
	if u.u.Ratings == nil {
		loaded, err := u.r.users.GetUserById(ctx, u.u.ID, "Ratings")
		if err != nil {
			return nil, u.r.fail(ctx, "user.ratings", err)
		}
		u.u.Ratings = loaded.Ratings
	}
	return u.r.ratingList(u.u.Ratings), nil
}

type sessionResolver struct {
	email      *string
	isLoggedIn bool
	role       *string
}

func (s *sessionResolver) Email() *string   { return s.email }
func (s *sessionResolver) IsLoggedIn() bool { return s.isLoggedIn }
func (s *sessionResolver) Role() *string    { return s.role }

func (r *Resolver) GetUserById(ctx context.Context, args struct{ ID float64 }) (*userResolver, error) {
	id, err := toID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "getUserById", err)
	}
	user, err := r.users.GetUserById(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "getUserById", err)
	}
	return r.newUser(user), nil
}

func (r *Resolver) GetUserByEmail(ctx context.Context, args struct{ Email string }) (*userResolver, error) {
	user, err := r.users.GetUserByEmail(ctx, args.Email)
	if err != nil {
		return nil, r.fail(ctx, "getUserByEmail", err)
	}
	return r.newUser(user), nil
}

func (r *Resolver) IsEmailUnique(ctx context.Context, args struct{ Email string }) (bool, error) {
	unique, err := r.users.IsEmailUnique(ctx, args.Email)
	if err != nil {
		return false, r.fail(ctx, "isEmailUnique", err)
	}
	return unique, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ UserData userLoginInput }) (string, error) {
	token, err := r.users.Login(ctx, request_models.LoginRequest{
		Email:    args.UserData.Email,
		Password: args.UserData.Password,
	})
	if err != nil {
		return "", r.fail(ctx, "login", err)
	}
	return token, nil
}

func (r *Resolver) CheckSession(ctx context.Context) (*sessionResolver, error) {
	session, err := r.users.CheckSession(ctx, authz.ActorFrom(ctx).UserID)
	if err != nil {
		return nil, r.fail(ctx, "checkSession", err)
	}
	if !session.IsLoggedIn {
		return &sessionResolver{}, nil
	}
	role := string(session.Role)
	return &sessionResolver{email: &session.Email, isLoggedIn: true, role: &role}, nil
}

func (r *Resolver) Register(ctx context.Context, args struct{ NewUserData userInput }) (string, error) {
	in := args.NewUserData
	cityID, err := optionalID(in.City)
	if err != nil {
		return "", r.fail(ctx, "register", err)
	}
	if _, err := r.users.Register(ctx, request_models.RegisterRequest{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		CityID:    cityID,
	}); err != nil {
		return "", r.fail(ctx, "register", err)
	}
	return "User registered", nil
}

func (r *Resolver) UpdateUserById(ctx context.Context, args struct {
	UserData userUpdateInput
	ID       float64
}) (string, error) {
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "updateUserById", err)
	}
	in := args.UserData
	cityID, err := optionalID(in.City)
	if err != nil {
		return "", r.fail(ctx, "updateUserById", err)
	}
	msg, err := r.users.UpdateUser(ctx, id, request_models.UpdateUserRequest{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		Role:      toRole(in.Role),
		CityID:    cityID,
	})
	if err != nil {
		return "", r.fail(ctx, "updateUserById", err)
	}
	return msg, nil
}

func (r *Resolver) DeleteUserById(ctx context.Context, args struct{ ID float64 }) (string, error) {
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "deleteUserById", err)
	}
	msg, err := r.users.DeleteUser(ctx, id)
	if err != nil {
		return "", r.fail(ctx, "deleteUserById", err)
	}
	return msg, nil
}

func toRole(s *string) *db_models.Role {
	if s == nil {
		return nil
	}
	role := db_models.Role(*s)
	return &role
}
